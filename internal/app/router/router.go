// Package router builds the HTTP route table for the API server.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/admin/authz"
	adminhandler "shop_backend/internal/feature/admin/transport/handler"
	adminmw "shop_backend/internal/feature/admin/transport/middleware"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	ordershandler "shop_backend/internal/feature/orders/transport/handler"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, products *cataloghandler.ProductHandler,
	orders *ordershandler.OrderHandler, admin *adminhandler.AdminHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザフロントエンド向けCORS
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// 商品カタログ
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)

		// 注文
		api.GET("/orders", orders.List)
		api.POST("/orders", orders.Create)

		// アカウント
		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)
	}

	// 管理系ルート: JWT認証のうえ認可ポリシーを通過した管理者のみ
	adm := r.Group("/api/admin")
	adm.Use(jwtmw.AuthRequired())
	{
		adm.GET("/stats", adminmw.RequireResource(authz.ResourceDashboard), admin.Stats)
		adm.PUT("/orders/:id", adminmw.RequireResource(authz.ResourceOrders), admin.UpdateOrder)
		adm.PUT("/users/:id/role", adminmw.RequireResource(authz.ResourceUsers), admin.UpdateUserRole)
	}

	return r
}
