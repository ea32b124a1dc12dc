// Package dto はadminフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// UpdateOrderReq はPUT /api/admin/orders/:idのリクエストボディを表します。
// TrackingNumberは省略可能です。
type UpdateOrderReq struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// UpdateRoleReq はPUT /api/admin/users/:id/roleのリクエストボディを表します。
// IsAdminはfalseへの変更も有効なためポインタでバインドします。
type UpdateRoleReq struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}
