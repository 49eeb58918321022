package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction commits when the handler answers below 400 and rolls back
// otherwise. The response is held until the outcome is known so a failed
// commit is reported as 500. Functions registered with AfterCommit run once
// the commit succeeded and the response was written.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := RequestIDFromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", requestID, "error", err)
				writeInternalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			var hooks []func()
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, afterCommitKey{}, &hooks)
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(bw, r)

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "request_id", requestID, "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "request_id", requestID, "error", err)
				writeInternalError(w)
				return
			}
			bw.flush(w)

			for _, fn := range hooks {
				fn()
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

type afterCommitKey struct{}

// AfterCommit schedules fn to run after the request transaction commits.
// It reports false when ctx carries no transaction and fn was not scheduled.
// Nothing scheduled runs when the transaction rolls back.
func AfterCommit(ctx context.Context, fn func()) bool {
	hooks, ok := ctx.Value(afterCommitKey{}).(*[]func())
	if !ok {
		return false
	}
	*hooks = append(*hooks, fn)
	return true
}

type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(bw.statusCode)
	if _, err := w.Write(bw.body.Bytes()); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"error":"Internal server error"}`))
}
