package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	blogadapters "blog_backend/internal/feature/blog/adapters"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	"blog_backend/internal/platform/config"
	platformdb "blog_backend/internal/platform/db"
	"blog_backend/internal/platform/denylist"
	jwtmw "blog_backend/internal/platform/jwt"
	platformredis "blog_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	// ローカル開発用。本番環境では環境変数が直接設定される。
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db, err := platformdb.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	// トークン失効リストの保存先。ログアウトの成立に必須のため、
	// 接続できない場合は縮退運転せず起動を中止する。
	rdb, err := platformredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	articleRepo := blogadapters.NewArticleMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL()),
		jwtmw.NewVerifier(cfg.JWTSecret),
		denylist.NewDenylistRedis(rdb, "denylist"),
	)
	blogUC := blogusecase.NewBlogUsecase(articleRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	blogH := bloghandler.NewBlogHandler(blogUC)

	// ルータ生成
	r := router.NewRouter(authH, blogH, authUC)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
