// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	ordersentity "shop_backend/internal/feature/orders/domain/entity"
)

// OpenDB は環境変数からDSNを組み立ててデータベースに接続します。
// DB_HOSTが未設定の場合はローカル開発用のSQLiteファイルにフォールバックします。
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")

	var dialector gorm.Dialector
	if host == "" {
		// ローカル開発用フォールバック
		dialector = gsqlite.Open("ecommerce.db")
	} else {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			host, user, pass, name, port)
		dialector = gpostgres.Open(dsn)
	}

	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		gdb, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Product, Order, OrderItem）
		if err := gdb.AutoMigrate(
			&authentity.User{},
			&catalogentity.Product{},
			&ordersentity.Order{},
			&ordersentity.OrderItem{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return gdb
}

// IsUniqueViolation は一意制約違反によるエラーかどうかを判定します。
// Postgresはエラーコード23505、テストおよびローカル開発のSQLiteは
// エラーメッセージで判定します。
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// Postgresエラー23505: unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// SQLiteドライバは型付きエラーを公開しないためメッセージで判定
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
