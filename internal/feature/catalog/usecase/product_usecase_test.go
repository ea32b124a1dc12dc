package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// mockProductRepository is an in-memory ProductRepository for usecase tests.
type mockProductRepository struct {
	products map[uint]*entity.Product
	nextID   uint
	saved    int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: map[uint]*entity.Product{}}
}

func (m *mockProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepository) Save(ctx context.Context, p *entity.Product) error {
	m.saved++
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestProductUsecase_Create(t *testing.T) {
	t.Run("name and price alone yield zero-valued optional fields", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)

		p := &entity.Product{Name: "Candle", Price: 9.99}
		err := uc.Create(context.Background(), p)

		require.NoError(t, err, "create failed")
		assert.NotZero(t, p.ID, "ID is not set")
		assert.Equal(t, "", p.Description, "description should be empty")
		assert.Equal(t, float64(0), p.Rating, "rating should be 0")
		assert.False(t, p.Featured, "featured should be false")
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)

		err := uc.Create(context.Background(), &entity.Product{Name: "Candle", Price: -1})

		assert.ErrorIs(t, err, ErrNegativePrice, "should reject negative price")
		assert.Empty(t, repo.products, "nothing should be stored")
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)

		err := uc.Create(context.Background(), &entity.Product{Name: "Candle", Price: 1, Stock: -5})

		assert.ErrorIs(t, err, ErrNegativeStock, "should reject negative stock")
		assert.Empty(t, repo.products, "nothing should be stored")
	})
}

func TestProductUsecase_Update(t *testing.T) {
	seed := func(t *testing.T, repo *mockProductRepository) *entity.Product {
		t.Helper()
		p := &entity.Product{Name: "Candle", Price: 9.99, Description: "relaxing", Stock: 10}
		require.NoError(t, repo.Create(context.Background(), p), "failed to seed product")
		return p
	}

	t.Run("partial update only touches the provided fields", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)
		seeded := seed(t, repo)

		updated, err := uc.Update(context.Background(), seeded.ID, UpdateProductInput{Price: ptr(12.5)})

		require.NoError(t, err, "update failed")
		assert.Equal(t, 12.5, updated.Price, "price should be updated")
		assert.Equal(t, "Candle", updated.Name, "name should be untouched")
		assert.Equal(t, "relaxing", updated.Description, "description should be untouched")
		assert.Equal(t, 10, updated.Stock, "stock should be untouched")
	})

	t.Run("missing product returns ErrProductNotFound", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)

		_, err := uc.Update(context.Background(), 999, UpdateProductInput{Price: ptr(1.0)})

		assert.ErrorIs(t, err, ErrProductNotFound, "should return ErrProductNotFound")
	})

	t.Run("negative price update is rejected without saving", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)
		seeded := seed(t, repo)

		_, err := uc.Update(context.Background(), seeded.ID, UpdateProductInput{Price: ptr(-0.01)})

		assert.ErrorIs(t, err, ErrNegativePrice, "should reject negative price")
		assert.Zero(t, repo.saved, "nothing should be saved")
		stored, _ := repo.FindByID(context.Background(), seeded.ID)
		assert.Equal(t, 9.99, stored.Price, "stored price should be unchanged")
	})

	t.Run("negative stock update is rejected without saving", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)
		seeded := seed(t, repo)

		_, err := uc.Update(context.Background(), seeded.ID, UpdateProductInput{Stock: ptr(-1)})

		assert.ErrorIs(t, err, ErrNegativeStock, "should reject negative stock")
		assert.Zero(t, repo.saved, "nothing should be saved")
	})
}

func TestProductUsecase_Delete(t *testing.T) {
	t.Run("missing product returns ErrProductNotFound", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUsecase(repo)

		err := uc.Delete(context.Background(), 42)

		assert.ErrorIs(t, err, ErrProductNotFound, "should return ErrProductNotFound")
	})
}
