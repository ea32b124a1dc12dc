package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/router"
	adminadapters "shop_backend/internal/feature/admin/adapters"
	adminhandler "shop_backend/internal/feature/admin/transport/handler"
	adminusecase "shop_backend/internal/feature/admin/usecase"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	ordersadapters "shop_backend/internal/feature/orders/adapters"
	ordershandler "shop_backend/internal/feature/orders/transport/handler"
	ordersusecase "shop_backend/internal/feature/orders/usecase"
	"shop_backend/internal/platform/cache"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/externalapi/razorpay"
	infrahttp "shop_backend/internal/platform/http"
	jwtmw "shop_backend/internal/platform/jwt"
	infraredis "shop_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	productRepo := catalogadapters.NewProductPostgres(db)
	orderRepo := ordersadapters.NewOrderPostgres(db)
	adminRepo := adminadapters.NewAdminPostgres(db)

	// Redisキャッシュでラップ
	cachedProductRepo := cache.NewCachingProductRepository(rdb, 5*time.Minute, productRepo, "products")

	// 決済ゲートウェイ（資格情報が未設定の場合は連携をスキップ）
	var gateway ordersusecase.PaymentGateway
	payCfg := razorpay.LoadConfig()
	if payCfg.Enabled() {
		gateway = razorpay.NewClient(payCfg, infrahttp.NewHTTPClient(payCfg.Timeout))
	} else {
		log.Println("[WARN] Razorpay credentials not set. Orders will keep payment_status=pending.")
	}

	// JWT
	tokens := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	productUC := catalogusecase.NewProductUsecase(cachedProductRepo)
	orderUC := ordersusecase.NewOrderUsecase(orderRepo, gateway)
	adminUC := adminusecase.NewAdminUsecase(adminRepo, adminRepo, adminRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	productH := cataloghandler.NewProductHandler(productUC)
	orderH := ordershandler.NewOrderHandler(orderUC)
	adminH := adminhandler.NewAdminHandler(adminUC)

	// ルータ生成
	r := router.NewRouter(authH, productH, orderH, adminH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
