// Package usecase はadminフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"shop_backend/internal/feature/admin/domain/entity"
	authentity "shop_backend/internal/feature/auth/domain/entity"
	ordersentity "shop_backend/internal/feature/orders/domain/entity"
)

// StatsRepository はダッシュボード集計の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StatsRepository interface {
	// Collect はダッシュボードの全集計値を取得します。
	Collect(ctx context.Context) (*entity.DashboardStats, error)
}

// OrderAdminRepository は管理側の注文更新を抽象化します。
type OrderAdminRepository interface {
	// UpdateStatus は注文のステータスと追跡番号を更新します。
	// 注文が存在しない場合、ErrOrderNotFoundを返します。
	UpdateStatus(ctx context.Context, orderID uint, status, trackingNumber string) (*ordersentity.Order, error)
}

// UserAdminRepository は管理側のユーザー更新を抽象化します。
type UserAdminRepository interface {
	// SetAdmin はユーザーの管理者フラグを更新します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*authentity.User, error)
}

// AdminUsecase は管理ダッシュボードのビジネスロジックを提供します。
type AdminUsecase struct {
	stats  StatsRepository
	orders OrderAdminRepository
	users  UserAdminRepository
}

// NewAdminUsecase はAdminUsecaseの新しいインスタンスを生成します。
func NewAdminUsecase(stats StatsRepository, orders OrderAdminRepository, users UserAdminRepository) *AdminUsecase {
	return &AdminUsecase{
		stats:  stats,
		orders: orders,
		users:  users,
	}
}

// Dashboard はダッシュボードの集計値を返します。
func (u *AdminUsecase) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	return u.stats.Collect(ctx)
}

// UpdateOrderStatus は注文のステータスと追跡番号を更新します。
// ステータスは既知の語彙に含まれている必要があります。
func (u *AdminUsecase) UpdateOrderStatus(ctx context.Context, orderID uint, status, trackingNumber string) (*ordersentity.Order, error) {
	if !ordersentity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status, trackingNumber)
}

// SetUserRole はユーザーの管理者フラグを更新します。
func (u *AdminUsecase) SetUserRole(ctx context.Context, userID uint, isAdmin bool) (*authentity.User, error) {
	return u.users.SetAdmin(ctx, userID, isAdmin)
}
