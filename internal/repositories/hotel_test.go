package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hotelCols = []string{"id", "name", "address", "city", "state", "country", "zipcode", "nightly_rate", "description"}

func TestHotelReadRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM hotels WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(hotelCols).AddRow(int64(1), "Grand", "1 Main St", "Springfield", "IL", "US", "62701", 120.5, "Nice"))

	hotel, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, hotel)
	assert.Equal(t, "Grand", hotel.Name)
	assert.Equal(t, 120.5, hotel.NightlyRate)

	mock.ExpectQuery(`SELECT .* FROM hotels WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	hotel, err = repo.Get(ctx, 2)
	assert.NoError(t, err)
	assert.Nil(t, hotel)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelReadRepository(db)

	mock.ExpectQuery(`SELECT .* FROM hotels ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(hotelCols).
			AddRow(int64(1), "Grand", "1 Main St", "Springfield", "IL", "US", "62701", 120.5, "Nice").
			AddRow(int64(2), "Plaza", "5 Fifth Ave", "New York", "NY", "US", "10001", 300.0, "Busy"))

	hotels, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Plaza", hotels[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelWriteRepository(db, nil)

	hotel := &models.HotelDB{
		Name: "Grand", Address: "1 Main St", City: "Springfield", State: "IL",
		Country: "US", Zipcode: "62701", NightlyRate: 120.5, Description: "Nice",
	}

	mock.ExpectQuery(`INSERT INTO hotels`).
		WithArgs("Grand", "1 Main St", "Springfield", "IL", "US", "62701", 120.5, "Nice").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Save(context.Background(), hotel)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
