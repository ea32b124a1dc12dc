// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
)

// ProductUsecase は商品カタログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ProductUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, id uint, in usecase.UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// defaultStock はリクエストで在庫が省略された場合の初期在庫数です。
const defaultStock = 10

// ProductHandler は商品カタログのHTTPリクエストを処理します。
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler はProductHandlerの新しいインスタンスを生成します。
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// parseID はパスパラメータ:idをuintに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

// List はGET /api/productsを処理し、全商品の配列を返します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		slog.Error("product list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list products"})
		return
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はGET /api/products/:idを処理します。存在しない場合は404を返します。
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
			return
		}
		slog.Error("product get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get product"})
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

// Create はPOST /api/productsを処理します。
// 名前と価格は必須で、欠落時は400を返します。成功時は201を返します。
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	// 省略時のみ初期在庫を適用する（明示的な0はそのまま格納）
	stock := defaultStock
	if req.Stock != nil {
		stock = *req.Stock
	}

	p := &entity.Product{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Stock:       stock,
		Benefits:    req.Benefits,
		Ingredients: req.Ingredients,
		Size:        req.Size,
		Color:       req.Color,
		Reviews:     req.Reviews,
	}
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		if errors.Is(err, usecase.ErrNegativePrice) || errors.Is(err, usecase.ErrNegativeStock) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("product create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create product"})
		return
	}
	slog.Info("product created", "id", p.ID, "name", p.Name)
	c.JSON(http.StatusCreated, dto.NewProductResponse(p))
}

// Update はPUT /api/products/:idを処理します。
// リクエストに含まれないフィールドは現在の値を保持します。
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Stock:       req.Stock,
		Benefits:    req.Benefits,
		Ingredients: req.Ingredients,
		Size:        req.Size,
		Color:       req.Color,
		Reviews:     req.Reviews,
	}
	p, err := h.products.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
		case errors.Is(err, usecase.ErrNegativePrice), errors.Is(err, usecase.ErrNegativeStock):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("product update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update product"})
		}
		return
	}
	slog.Info("product updated", "id", p.ID)
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

// Delete はDELETE /api/products/:idを処理します。
// 商品を物理削除します。既存注文の明細への参照はガードしません。
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
			return
		}
		slog.Error("product delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete product"})
		return
	}
	slog.Info("product deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "product deleted"})
}
