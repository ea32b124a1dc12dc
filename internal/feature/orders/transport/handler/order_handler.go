// Package handler はordersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/transport/http/dto"
	"shop_backend/internal/feature/orders/usecase"
)

// OrderUsecase は注文操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type OrderUsecase interface {
	Create(ctx context.Context, in usecase.CreateOrderInput) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
}

// OrderHandler は注文のHTTPリクエストを処理します。
type OrderHandler struct {
	orders OrderUsecase
}

// NewOrderHandler はOrderHandlerの新しいインスタンスを生成します。
func NewOrderHandler(orders OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create はPOST /api/ordersを処理します。
// - リクエストJSONをCreateOrderReqにバインド
// - 検証エラー（空の明細、不正な数量・単価、合計不一致、未知の商品）は400を返却
// - 成功時は作成された注文（番号、ステータス、タイムスタンプ含む）で201を返却
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("order validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.CreateOrderInput{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Total:           *req.Total,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, usecase.CreateOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     *it.Price,
		})
	}

	order, err := h.orders.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyOrder),
			errors.Is(err, usecase.ErrInvalidQuantity),
			errors.Is(err, usecase.ErrInvalidUnitPrice),
			errors.Is(err, usecase.ErrTotalMismatch),
			errors.Is(err, usecase.ErrUnknownProduct):
			slog.Warn("order rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("order creation failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create order"})
		}
		return
	}

	slog.Info("order created", "number", order.Number, "total", order.Total, "items", len(order.Items))
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List はGET /api/ordersを処理し、明細と解決済み商品名つきの注文配列を返します。
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		slog.Error("order list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list orders"})
		return
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}
