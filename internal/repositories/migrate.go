package repositories

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the users, hotels and bookings tables when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Info("database schema is up to date")
	return nil
}
