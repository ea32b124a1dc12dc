// Package dto はcatalogフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "shop_backend/internal/feature/catalog/domain/entity"

// ProductResponse は商品1件のJSON表現です。
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Featured    bool    `json:"featured"`
	Stock       int     `json:"stock"`
	Benefits    string  `json:"benefits"`
	Ingredients string  `json:"ingredients"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Reviews     int     `json:"reviews"`
}

// NewProductResponse はエンティティからProductResponseを生成します。
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		Featured:    p.Featured,
		Stock:       p.Stock,
		Benefits:    p.Benefits,
		Ingredients: p.Ingredients,
		Size:        p.Size,
		Color:       p.Color,
		Reviews:     p.Reviews,
	}
}
