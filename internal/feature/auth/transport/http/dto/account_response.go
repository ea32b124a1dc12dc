// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "shop_backend/internal/feature/auth/domain/entity"

// AccountResponse はアカウントの公開フィールドのみを表します。
// パスワードハッシュは決して含まれません。
type AccountResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`

	// Token はログイン成功時のみ設定される署名済みJWTです。
	Token string `json:"token,omitempty"`
}

// NewAccountResponse はエンティティからAccountResponseを生成します。
func NewAccountResponse(u *entity.User) AccountResponse {
	return AccountResponse{
		ID:      u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
