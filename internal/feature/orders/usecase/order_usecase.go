// Package usecase はordersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"shop_backend/internal/feature/orders/domain/entity"
)

const (
	// maxNumberAttempts は注文番号の衝突時に再生成を試みる最大回数です。
	maxNumberAttempts = 3

	// totalTolerance は合計金額の照合で許容する浮動小数点誤差です。
	totalTolerance = 0.005
)

// OrderRepository は注文エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type OrderRepository interface {
	// CreateWithItems は注文ヘッダと全明細を単一トランザクションで永続化します。
	// 明細が存在しない商品を参照している場合はErrUnknownProductを返して
	// 全体をロールバックし、注文番号が衝突した場合はErrNumberTakenを返します。
	CreateWithItems(ctx context.Context, order *entity.Order) error

	// List は全注文を明細および解決済みの商品名つきで返します。
	List(ctx context.Context) ([]entity.Order, error)

	// UpdatePayment は注文の決済参照と決済ステータスを更新します。
	UpdatePayment(ctx context.Context, orderID uint, paymentID, status string) error
}

// PaymentGateway は外部決済ゲートウェイを抽象化します。
// 決済の失敗は注文のpayment_statusに反映され、APIエラーにはなりません。
type PaymentGateway interface {
	// CreatePayment は指定金額の決済を作成し、ゲートウェイの参照IDを返します。
	CreatePayment(ctx context.Context, orderNumber string, amount float64) (string, error)
}

// CreateOrderItem は注文作成入力の明細1行です。
// Priceは呼び出し元が提供する購入時点の単価スナップショットです。
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// CreateOrderInput は注文作成の入力を表します。
type CreateOrderInput struct {
	// UserID は注文主のユーザーIDです。ゲスト購入の場合はnilです。
	UserID          *uint
	ShippingAddress string
	Total           float64
	Items           []CreateOrderItem
}

// OrderUsecase は注文作成・照会のビジネスロジックを提供します。
type OrderUsecase struct {
	repo    OrderRepository
	gateway PaymentGateway

	// newNumber はテストで差し替え可能な注文番号ジェネレーターです。
	newNumber func() string
}

// NewOrderUsecase はOrderUsecaseの新しいインスタンスを生成します。
// gatewayはnil可で、その場合は決済連携をスキップします。
func NewOrderUsecase(repo OrderRepository, gateway PaymentGateway) *OrderUsecase {
	return &OrderUsecase{
		repo:    repo,
		gateway: gateway,
		newNumber: func() string {
			return GenerateOrderNumber(time.Now())
		},
	}
}

// validate は注文作成入力の不変条件をチェックします。
func validate(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return ErrEmptyOrder
	}
	var sum float64
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if it.Price < 0 {
			return ErrInvalidUnitPrice
		}
		sum += float64(it.Quantity) * it.Price
	}
	// 単価は呼び出し元のスナップショットを信頼するが、
	// 合計だけはサーバー側で再計算して照合する
	if math.Abs(sum-in.Total) > totalTolerance {
		return ErrTotalMismatch
	}
	return nil
}

// Create は注文をその全明細と共にアトミックに作成します。
//   - 入力を検証（明細非空、数量正、単価非負、合計照合）
//   - 注文番号を生成し、ヘッダと明細を単一トランザクションで挿入
//   - 番号衝突時は新しい番号で再試行（呼び出し元には露出しない）
//   - 明細のいずれかが失敗した場合は全体をロールバック
//   - コミット後、設定されていれば決済ゲートウェイに決済を作成
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	var order *entity.Order
	for attempt := 0; ; attempt++ {
		order = &entity.Order{
			UserID:          in.UserID,
			Number:          u.newNumber(),
			Status:          entity.StatusProcessing,
			Total:           in.Total,
			ShippingAddress: in.ShippingAddress,
			PaymentStatus:   entity.PaymentPending,
		}
		for _, it := range in.Items {
			order.Items = append(order.Items, entity.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}

		err := u.repo.CreateWithItems(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, ErrNumberTaken) && attempt < maxNumberAttempts-1 {
			slog.Warn("order number collision, retrying", "number", order.Number)
			continue
		}
		if errors.Is(err, ErrNumberTaken) {
			return nil, fmt.Errorf("could not allocate a unique order number after %d attempts", maxNumberAttempts)
		}
		return nil, err
	}

	u.requestPayment(ctx, order)
	return order, nil
}

// requestPayment はコミット済みの注文に対して決済ゲートウェイを呼び出します。
// ゲートウェイの失敗（拒否、タイムアウト）はpayment_statusに反映するのみで、
// 注文作成自体は成功として扱います。
func (u *OrderUsecase) requestPayment(ctx context.Context, order *entity.Order) {
	if u.gateway == nil {
		return
	}
	ref, err := u.gateway.CreatePayment(ctx, order.Number, order.Total)
	if err != nil {
		slog.Warn("payment creation failed", "order", order.Number, "error", err)
		order.PaymentStatus = entity.PaymentFailed
	} else {
		order.PaymentID = ref
		order.PaymentStatus = entity.PaymentCreated
	}
	if err := u.repo.UpdatePayment(ctx, order.ID, order.PaymentID, order.PaymentStatus); err != nil {
		slog.Error("failed to record payment status", "order", order.Number, "error", err)
	}
}

// List は全注文を明細つきで返します。
func (u *OrderUsecase) List(ctx context.Context) ([]entity.Order, error) {
	return u.repo.List(ctx)
}
