// Package router はアプリケーションのHTTPルートを組み立てます。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	addresshandler "addressbook_backend/internal/feature/addressbook/transport/handler"
	platformhandler "addressbook_backend/internal/platform/http/handler"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
func NewRouter(address *addresshandler.AddressHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザクライアント向けにデフォルトのCORSポリシーを適用
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	addresses := r.Group("/api/addresses")
	{
		addresses.POST("", address.Create)
		addresses.GET("", address.List)
		// 検索ルートは :id より先に解決される静的パス
		addresses.GET("/search", address.Search)
		addresses.GET("/search/name", address.SearchByName)
		addresses.GET("/search/city", address.SearchByCity)
		addresses.GET("/:id", address.GetByID)
		addresses.PUT("/:id", address.Update)
		addresses.DELETE("/:id", address.Delete)
	}

	return r
}
