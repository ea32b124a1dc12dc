// Package adapters はadminフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/feature/admin/domain/entity"
	"shop_backend/internal/feature/admin/usecase"
	authentity "shop_backend/internal/feature/auth/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	ordersentity "shop_backend/internal/feature/orders/domain/entity"
)

// topProductsLimit は人気商品ランキングの件数です。
const topProductsLimit = 5

// adminPostgres は管理ダッシュボード用リポジトリ群のPostgres実装です。
// GORMの集計クエリでダッシュボードの数値を算出します。
type adminPostgres struct {
	db *gorm.DB
}

// adminPostgresが各管理リポジトリを実装していることをコンパイル時に検証します。
var (
	_ usecase.StatsRepository      = (*adminPostgres)(nil)
	_ usecase.OrderAdminRepository = (*adminPostgres)(nil)
	_ usecase.UserAdminRepository  = (*adminPostgres)(nil)
)

// NewAdminPostgres は指定されたgorm.DB接続でadminPostgresの新しいインスタンスを生成します。
func NewAdminPostgres(gdb *gorm.DB) *adminPostgres {
	return &adminPostgres{db: gdb}
}

// Collect はダッシュボードの全集計値を取得します。
func (r *adminPostgres) Collect(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	gdb := r.db.WithContext(ctx)

	if err := gdb.Model(&catalogentity.Product{}).Count(&stats.Products).Error; err != nil {
		return nil, err
	}
	if err := gdb.Model(&ordersentity.Order{}).Count(&stats.Orders).Error; err != nil {
		return nil, err
	}
	if err := gdb.Model(&authentity.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	// 注文が1件もない場合、SUMはNULLを返すためCOALESCEで0にする
	if err := gdb.Model(&ordersentity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		return nil, err
	}
	if err := gdb.Model(&ordersentity.Order{}).
		Where("status = ?", ordersentity.StatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}

	// 販売数量の多い商品の上位を集計
	rows := []struct {
		ProductID uint
		Name      string
		UnitsSold int64
	}{}
	if err := gdb.Model(&ordersentity.OrderItem{}).
		Select("order_items.product_id, products.name, SUM(order_items.quantity) AS units_sold").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("units_sold DESC").
		Limit(topProductsLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.TopProducts = append(stats.TopProducts, entity.ProductSales{
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitsSold: row.UnitsSold,
		})
	}

	return &stats, nil
}

// UpdateStatus は注文のステータスと追跡番号を更新します。
// 注文が存在しない場合、usecase.ErrOrderNotFoundを返します。
func (r *adminPostgres) UpdateStatus(ctx context.Context, orderID uint, status, trackingNumber string) (*ordersentity.Order, error) {
	var order ordersentity.Order
	if err := r.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if trackingNumber != "" {
		updates["tracking_number"] = trackingNumber
	}
	if err := r.db.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = status
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}
	return &order, nil
}

// SetAdmin はユーザーの管理者フラグを更新します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *adminPostgres) SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*authentity.User, error) {
	var user authentity.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&user).Update("is_admin", isAdmin).Error; err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	return &user, nil
}
