package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

const hotelColumns = `id, name, address, city, state, country, zipcode, nightly_rate, description`

// HotelReadRepository handles hotel read operations
type HotelReadRepository struct {
	db *sqlx.DB
}

func NewHotelReadRepository(db *sqlx.DB) *HotelReadRepository {
	return &HotelReadRepository{db: db}
}

// Get returns nil, nil when the hotel does not exist.
func (r *HotelReadRepository) Get(ctx context.Context, id int64) (*models.HotelDB, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	var hotel models.HotelDB
	err := r.db.GetContext(ctx, &hotel, query, id)

	logQuery(query, []any{id}, hotel.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// List returns every hotel ordered by id.
func (r *HotelReadRepository) List(ctx context.Context) ([]models.HotelDB, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels ORDER BY id`

	hotels := []models.HotelDB{}
	err := r.db.SelectContext(ctx, &hotels, query)

	logQuery(query, nil, len(hotels), err)

	if err != nil {
		return nil, err
	}
	return hotels, nil
}

// HotelWriteRepository handles hotel write operations
type HotelWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHotelWriteRepository(db *sqlx.DB, txGetter TxGetter) *HotelWriteRepository {
	return &HotelWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the hotel and returns the new id.
func (r *HotelWriteRepository) Save(ctx context.Context, hotel *models.HotelDB) (int64, error) {
	query := `
		INSERT INTO hotels (name, address, city, state, country, zipcode, nightly_rate, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	args := []any{
		hotel.Name, hotel.Address, hotel.City, hotel.State,
		hotel.Country, hotel.Zipcode, hotel.NightlyRate, hotel.Description,
	}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}
