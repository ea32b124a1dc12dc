package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Product{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestProductPostgres_Create(t *testing.T) {
	t.Run("creation with only required fields keeps documented defaults", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		p := &entity.Product{Name: "Candle", Price: 9.99}
		err := repo.Create(context.Background(), p)
		require.NoError(t, err, "failed to create product")
		require.NotZero(t, p.ID, "ID is not set")

		found, err := repo.FindByID(context.Background(), p.ID)
		require.NoError(t, err, "failed to find product")
		assert.Equal(t, "Candle", found.Name, "name does not match")
		assert.Equal(t, 9.99, found.Price, "price does not match")
		assert.Equal(t, "", found.Description, "description should default to empty")
		assert.Equal(t, "", found.Category, "category should default to empty")
		assert.Equal(t, float64(0), found.Rating, "rating should default to 0")
		assert.False(t, found.Featured, "featured should default to false")
	})

	t.Run("explicit zero stock round-trips as zero", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		p := &entity.Product{Name: "Candle", Price: 9.99, Stock: 0}
		require.NoError(t, repo.Create(context.Background(), p), "failed to create product")

		found, err := repo.FindByID(context.Background(), p.ID)
		require.NoError(t, err, "failed to find product")
		assert.Equal(t, 0, found.Stock, "a zero stock must be stored as zero")
	})
}

func TestProductPostgres_FindByID(t *testing.T) {
	t.Run("missing ID returns ErrProductNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "product should be nil")
		assert.ErrorIs(t, err, usecase.ErrProductNotFound, "should return ErrProductNotFound")
	})
}

func TestProductPostgres_List(t *testing.T) {
	t.Run("returns every product", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		for _, name := range []string{"Bath Bomb", "Gemstone Candle", "Tealight"} {
			err := repo.Create(context.Background(), &entity.Product{Name: name, Price: 5})
			require.NoError(t, err, "failed to create test data")
		}

		products, err := repo.List(context.Background())

		assert.NoError(t, err, "failed to list products")
		assert.Len(t, products, 3, "unexpected product count")
	})

	t.Run("empty catalog lists cleanly", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		products, err := repo.List(context.Background())

		assert.NoError(t, err, "failed to list products")
		assert.Empty(t, products, "expected no products")
	})
}

func TestProductPostgres_Save(t *testing.T) {
	t.Run("persists all fields including zero values", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		p := &entity.Product{Name: "Candle", Price: 9.99, Featured: true}
		require.NoError(t, repo.Create(context.Background(), p), "failed to create product")

		p.Featured = false
		p.Price = 0
		require.NoError(t, repo.Save(context.Background(), p), "failed to save product")

		found, err := repo.FindByID(context.Background(), p.ID)
		require.NoError(t, err, "failed to find product")
		assert.False(t, found.Featured, "featured should be cleared")
		assert.Equal(t, float64(0), found.Price, "price should be zero")
	})
}

func TestProductPostgres_Delete(t *testing.T) {
	t.Run("hard-deletes the record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		p := &entity.Product{Name: "Candle", Price: 9.99}
		require.NoError(t, repo.Create(context.Background(), p), "failed to create product")

		err := repo.Delete(context.Background(), p.ID)
		assert.NoError(t, err, "failed to delete product")

		_, err = repo.FindByID(context.Background(), p.ID)
		assert.ErrorIs(t, err, usecase.ErrProductNotFound, "product should be gone")
	})

	t.Run("missing ID returns ErrProductNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductPostgres(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrProductNotFound, "should return ErrProductNotFound")
	})
}
