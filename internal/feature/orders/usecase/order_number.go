package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber は人間可読な注文番号を生成します。
// 形式は ORD-<yyyymmddhhmmss>-<4桁乱数> です。タイムスタンプのみでは
// 同一秒内の注文で衝突するため乱数サフィックスを付与し、それでも衝突した
// 場合は一意制約違反を検出して再生成します（usecase側でリトライ）。
func GenerateOrderNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/randが失敗するのはエントロピー枯渇時のみ。ナノ秒で代替する。
		return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102150405"), now.Nanosecond()%10000)
	}
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102150405"), n.Int64())
}
