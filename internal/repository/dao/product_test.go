package dao

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func nameConflictError() *pgconn.PgError {
	return &pgconn.PgError{
		Code:    pgerrcode.UniqueViolation,
		Message: `duplicate key value violates unique constraint "uni_products_name"`,
	}
}

func productRows() *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows([]string{"id", "name", "description", "price", "qty", "created_at", "updated_at"}).
		AddRow(1, "Phone", "A phone", 499.99, 3, now, now)
}

func TestProductDAO_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WithArgs("Phone", "A phone", 499.99, 3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := d.Insert(context.Background(), Product{
		Name:        "Phone",
		Description: "A phone",
		Price:       499.99,
		Qty:         3,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Phone", created.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_Insert_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnError(nameConflictError())
	mock.ExpectRollback()

	_, err := d.Insert(context.Background(), Product{Name: "Phone"})
	assert.ErrorIs(t, err, ErrProductNameExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "qty", "created_at", "updated_at"}).
		AddRow(1, "Phone", "A phone", 499.99, 3, now, now).
		AddRow(2, "Laptop", "A laptop", 999.99, 2, now, now)

	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC`).
		WillReturnRows(rows)

	products, err := d.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Phone", products[0].Name)
	assert.Equal(t, "Laptop", products[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).
		WillReturnRows(productRows())

	found, err := d.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Phone", found.Name)
	assert.Equal(t, 499.99, found.Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "qty", "created_at", "updated_at"}))

	_, err := d.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_Update(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := d.Update(context.Background(), Product{
		ID:          1,
		Name:        "Phone X",
		Description: "A better phone",
		Price:       599.99,
		Qty:         5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Phone X", updated.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_Update_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnError(nameConflictError())
	mock.ExpectRollback()

	_, err := d.Update(context.Background(), Product{ID: 1, Name: "Laptop"})
	assert.ErrorIs(t, err, ErrProductNameExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).
		WillReturnRows(productRows())
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := d.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Phone", deleted.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDAO_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewProductDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "qty", "created_at", "updated_at"}))

	_, err := d.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
