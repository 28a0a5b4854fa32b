package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/shared/ratelimiter"
)

// ブルートフォース対策: 認証エンドポイントはIPごとに1分あたり10リクエストまで。
const (
	authRateLimit    = 10
	authRateInterval = time.Minute
)

func NewRouter(authHandler *authhandler.AuthHandler, blogHandler *bloghandler.BlogHandler,
	validator jwtmw.TokenValidator) *gin.Engine {
	r := gin.Default()

	// ブラウザクライアント用CORS
	r.Use(cors.Default())

	// 未定義ルートは404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Page Not Found."})
	})

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// 新規ユーザー登録・ログイン（JWT 発行）
	authLimit := ratelimiter.Middleware(authRateLimit, authRateInterval)
	r.POST("/register", authLimit, authHandler.Register)
	r.POST("/login", authLimit, authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(validator))
	{
		auth.POST("/logout", authHandler.Logout)

		auth.GET("/blogs", blogHandler.List)
		auth.POST("/blogs", blogHandler.Create)
		auth.GET("/blogs/:slug", blogHandler.Get)
		auth.PATCH("/blogs/:slug", blogHandler.Update)
		auth.DELETE("/blogs/:slug", blogHandler.Delete)
	}

	return r
}
