// Package adapters はordersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
	"shop_backend/internal/platform/db"
)

// deletedProductName は削除済み商品を参照する明細に表示するプレースホルダです。
const deletedProductName = "(deleted product)"

// orderPostgres はOrderRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type orderPostgres struct {
	db *gorm.DB
}

// orderPostgresがOrderRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.OrderRepository = (*orderPostgres)(nil)

// NewOrderPostgres は指定されたgorm.DB接続でorderPostgresの新しいインスタンスを生成します。
func NewOrderPostgres(gdb *gorm.DB) *orderPostgres {
	return &orderPostgres{db: gdb}
}

// CreateWithItems は注文ヘッダと全明細を単一トランザクションで挿入します。
//   - ヘッダを挿入してIDを採番（この時点ではコミットしない）
//   - 明細ごとに参照先商品の存在をトランザクション内で確認して挿入
//   - いずれかが失敗した場合は全体をロールバック（部分的な注文を残さない）
//
// 注文番号の一意制約違反はusecase.ErrNumberTakenに変換され、
// usecase側で新しい番号により再試行されます。
func (r *orderPostgres) CreateWithItems(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil

		// ヘッダを挿入（関連はここでは保存しない）
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			if db.IsUniqueViolation(err) {
				return usecase.ErrNumberTaken
			}
			return err
		}

		for i := range items {
			// SQLiteは外部キーを強制しないため、参照先の存在を明示的に確認する
			var count int64
			if err := tx.Model(&catalogentity.Product{}).
				Where("id = ?", items[i].ProductID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return usecase.ErrUnknownProduct
			}

			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		order.Items = items
		return nil
	})
}

// List は全注文を明細つきで取得し、明細の商品名を一括で解決します。
// 参照先の商品が削除されている場合はプレースホルダ名を設定し、
// 一覧全体を失敗させません。
func (r *orderPostgres) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}

	// 明細が参照する商品IDを集めて1クエリで名前を解決する
	idSet := map[uint]struct{}{}
	for i := range orders {
		for j := range orders[i].Items {
			idSet[orders[i].Items[j].ProductID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return orders, nil
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var products []catalogentity.Product
	if err := r.db.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	for i := range orders {
		for j := range orders[i].Items {
			if name, ok := names[orders[i].Items[j].ProductID]; ok {
				orders[i].Items[j].ProductName = name
			} else {
				orders[i].Items[j].ProductName = deletedProductName
			}
		}
	}
	return orders, nil
}

// UpdatePayment は注文の決済参照と決済ステータスを更新します。
func (r *orderPostgres) UpdatePayment(ctx context.Context, orderID uint, paymentID, status string) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_id":     paymentID,
			"payment_status": status,
		}).Error
}
