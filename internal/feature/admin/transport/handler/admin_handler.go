// Package handler はadminフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/admin/domain/entity"
	"shop_backend/internal/feature/admin/transport/http/dto"
	"shop_backend/internal/feature/admin/usecase"
	authentity "shop_backend/internal/feature/auth/domain/entity"
	authdto "shop_backend/internal/feature/auth/transport/http/dto"
	ordersentity "shop_backend/internal/feature/orders/domain/entity"
	ordersdto "shop_backend/internal/feature/orders/transport/http/dto"
)

// AdminUsecase は管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status, trackingNumber string) (*ordersentity.Order, error)
	SetUserRole(ctx context.Context, userID uint, isAdmin bool) (*authentity.User, error)
}

// AdminHandler は管理ダッシュボードのHTTPリクエストを処理します。
// 認可はルータ側のポリシーミドルウェアで実施済みです。
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler はAdminHandlerの新しいインスタンスを生成します。
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats はGET /api/admin/statsを処理し、ダッシュボードの集計値を返します。
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("dashboard stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to collect stats"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}

// UpdateOrder はPUT /api/admin/orders/:idを処理し、
// 注文のステータスと追跡番号を更新します。
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid order id"})
		return
	}
	var req dto.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.admin.UpdateOrderStatus(c.Request.Context(), uint(id), req.Status, req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "order not found"})
		default:
			slog.Error("order status update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update order"})
		}
		return
	}
	slog.Info("order status updated", "number", order.Number, "status", order.Status)
	c.JSON(http.StatusOK, ordersdto.NewOrderResponse(order))
}

// UpdateUserRole はPUT /api/admin/users/:id/roleを処理し、
// ユーザーの管理者フラグを切り替えます。
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}
	var req dto.UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.admin.SetUserRole(c.Request.Context(), uint(id), *req.IsAdmin)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("user role update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		return
	}
	slog.Info("user role updated", "email", user.Email, "is_admin", user.IsAdmin)
	c.JSON(http.StatusOK, authdto.NewAccountResponse(user))
}
