// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/transport/http/dto"
	jwtmw "blog_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、アクセストークンと有効期間（秒）を返します。
	Register(ctx context.Context, email, password string) (string, int, error)
	// Login はユーザーを認証し、成功時にアクセストークンと有効期間（秒）を返します。
	Login(ctx context.Context, email, password string) (string, int, error)
	// Logout は提示されたトークンを失効させます（冪等）。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// tokenResponse はトークン発行成功時の共通レスポンスを返します。
func tokenResponse(c *gin.Context, token string, expiresIn int) {
	c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時はフィールドエラーとともに400を返却
// - メール重複時も400（フィールドエラー形式）を返却
// - 成功時はトークン付きで200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		if fe, ok := api.ValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, expiresIn, err := h.auth.Register(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("register failed: duplicate name", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.FieldErrors{
				"name": {"The name has already been taken."},
			})
			return
		}
		// ストレージ障害の詳細はクライアントに公開しない
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unknown database error"})
		return
	}

	slog.Info("user registered", "name", req.Name, "remote_addr", c.ClientIP())
	tokenResponse(c, token, expiresIn)
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 資格情報の不足・不一致はすべて401として扱い、詳細は公開しません。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	token, expiresIn, err := h.auth.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unknown database error"})
		return
	}

	slog.Info("user login successful", "name", req.Name, "remote_addr", c.ClientIP())
	tokenResponse(c, token, expiresIn)
}

// Logout は提示されたトークンを失効させます。
// 認証ゲートの背後に配置されるため、コンテキストには検証済みトークンが入っています。
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(jwtmw.ContextToken)

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unknown database error"})
		return
	}

	slog.Info("user logged out", "identity", c.GetString(jwtmw.ContextIdentity), "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Successfully logged out"})
}
