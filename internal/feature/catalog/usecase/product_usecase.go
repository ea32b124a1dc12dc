// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// ProductRepository は商品エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProductRepository interface {
	// List はすべての商品を返します。順序はストアの反復順です。
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID は指定されたIDの商品を取得します。
	// 商品が存在しない場合、ErrProductNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// Create は新しい商品を永続化し、採番されたIDをエンティティに設定します。
	Create(ctx context.Context, p *entity.Product) error

	// Save は商品の全フィールドを保存します。
	Save(ctx context.Context, p *entity.Product) error

	// Delete は指定されたIDの商品を物理削除します。
	// 商品が存在しない場合、ErrProductNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// UpdateProductInput は部分更新の入力を表します。
// nilのフィールドは「変更なし」を意味します（null値との区別のためポインタを使用）。
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
	Rating      *float64
	Featured    *bool
	Stock       *int
	Benefits    *string
	Ingredients *string
	Size        *string
	Color       *string
	Reviews     *int
}

// ProductUsecase は商品カタログのビジネスロジックを提供します。
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase はProductUsecaseの新しいインスタンスを生成します。
func NewProductUsecase(repo ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: repo}
}

// List はすべての商品を返します。ページネーションやフィルタリングは行いません。
func (u *ProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.repo.List(ctx)
}

// Get は指定されたIDの商品を取得します。
func (u *ProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.repo.FindByID(ctx, id)
}

// Create は新しい商品を検証して永続化します。
// 名前と価格は必須で、価格と在庫は非負でなければなりません。
func (u *ProductUsecase) Create(ctx context.Context, p *entity.Product) error {
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return u.repo.Create(ctx, p)
}

// Update は指定されたIDの商品に部分更新を適用します。
// 入力でnilのフィールドは現在の値を保持します。
func (u *ProductUsecase) Update(ctx context.Context, id uint, in UpdateProductInput) (*entity.Product, error) {
	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrNegativePrice
		}
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, ErrNegativeStock
		}
		p.Stock = *in.Stock
	}
	if in.Benefits != nil {
		p.Benefits = *in.Benefits
	}
	if in.Ingredients != nil {
		p.Ingredients = *in.Ingredients
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Reviews != nil {
		p.Reviews = *in.Reviews
	}

	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete は指定されたIDの商品を削除します。
// 既存注文の明細が参照していても削除は行われます（明細は購入時点のスナップショットを保持）。
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
