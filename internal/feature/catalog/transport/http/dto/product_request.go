// Package dto defines data transfer objects for the catalog feature's HTTP transport layer.
package dto

// CreateProductReq represents the request body for POST /api/products.
// Name and Price are required; Price is a pointer so an explicit 0 passes
// the required check while a missing field fails it. Stock is a pointer
// for the opposite reason: an explicit 0 must stay distinguishable from
// an omitted field, which receives the creation default.
type CreateProductReq struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating" binding:"gte=0"`
	Featured    bool     `json:"featured"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Benefits    string   `json:"benefits"`
	Ingredients string   `json:"ingredients"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Reviews     int      `json:"reviews" binding:"gte=0"`
}

// UpdateProductReq represents the request body for PUT /api/products/:id.
// Every field is a pointer: absence means "unchanged", not "clear".
type UpdateProductReq struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
	Featured    *bool    `json:"featured"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Benefits    *string  `json:"benefits"`
	Ingredients *string  `json:"ingredients"`
	Size        *string  `json:"size"`
	Color       *string  `json:"color"`
	Reviews     *int     `json:"reviews"`
}
