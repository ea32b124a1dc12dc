// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// productPostgres はProductRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type productPostgres struct {
	db *gorm.DB
}

// productPostgresがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*productPostgres)(nil)

// NewProductPostgres は指定されたgorm.DB接続でproductPostgresの新しいインスタンスを生成します。
func NewProductPostgres(gdb *gorm.DB) *productPostgres {
	return &productPostgres{db: gdb}
}

// List はすべての商品を取得します。
func (r *productPostgres) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID はIDで商品を取得します。
// 商品が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productPostgres) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create は商品をデータベースに追加します。
func (r *productPostgres) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Save は商品の全フィールドを保存します。
// ゼロ値のフィールドも保存対象に含めるためSaveを使用します。
func (r *productPostgres) Save(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete はIDで商品を物理削除します。
// 商品が存在しない場合、usecase.ErrProductNotFoundを返します。
// 既存注文の明細への参照はガードしません（明細はスナップショット価格を保持）。
func (r *productPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
