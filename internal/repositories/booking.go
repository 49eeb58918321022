package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

const bookingColumns = `id, created, check_in, check_out, hotel_id, user_id, room_preference,
	smoking_preference, credit_card_number, credit_card_name, credit_card_expiry`

// BookingReadRepository handles booking read operations
type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// Get returns nil, nil when the booking does not exist.
func (r *BookingReadRepository) Get(ctx context.Context, id int64) (*models.BookingDB, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, id)

	logQuery(query, []any{id}, booking.BookingID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUserID returns the user's bookings in insertion order.
func (r *BookingReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY id`

	bookings := []models.BookingDB{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)

	logQuery(query, []any{userID}, len(bookings), err)

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingWriteRepository handles booking write operations
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the booking and fills in its id and creation time.
func (r *BookingWriteRepository) Save(ctx context.Context, booking *models.BookingDB) error {
	query := `
		INSERT INTO bookings (check_in, check_out, hotel_id, user_id, room_preference,
			smoking_preference, credit_card_number, credit_card_name, credit_card_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created
	`
	args := []any{
		booking.CheckIn, booking.CheckOut, booking.HotelID, booking.UserID, booking.RoomPreference,
		booking.SmokingPreference, booking.CreditCardNumber, booking.CreditCardName, booking.CreditCardExpiry,
	}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&booking.BookingID, &booking.Created)

	logQuery(query, []any{booking.HotelID, booking.UserID, booking.CheckIn, booking.CheckOut}, booking.BookingID, err)

	return err
}

// Delete removes the booking and reports whether a row was deleted.
func (r *BookingWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM bookings WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
