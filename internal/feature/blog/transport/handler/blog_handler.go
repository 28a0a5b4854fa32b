// Package handler はblogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/blog/domain"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/transport/http/dto"
	"blog_backend/internal/feature/blog/usecase"
)

// BlogUsecase は記事CRUD操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type BlogUsecase interface {
	// List は全記事を挿入順で返します。
	List(ctx context.Context) ([]*entity.Article, error)
	// Create は記事を作成し、タイトルから導出したスラッグを返します。
	Create(ctx context.Context, title, summary, content string) (string, error)
	// Get はスラッグで記事を取得します。
	Get(ctx context.Context, slug string) (*entity.Article, error)
	// Update は記事の変更可能フィールドのみを部分更新します。
	Update(ctx context.Context, slug string, update usecase.ArticleUpdate) error
	// Delete は記事を完全に削除します。
	Delete(ctx context.Context, slug string) error
}

// BlogHandler は記事CRUD操作のHTTPリクエストを処理します。
type BlogHandler struct {
	blog BlogUsecase
}

// NewBlogHandler はBlogHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からBlogUsecaseを注入します。
func NewBlogHandler(blog BlogUsecase) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// storageError はストレージ障害を汎用500レスポンスに変換します。
// バックエンドのエラー詳細はログにのみ残し、クライアントには公開しません。
func storageError(c *gin.Context, op string, err error) {
	slog.Error("storage operation failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unknown database error"})
}

// notFound は未知のスラッグに対する404レスポンスを返します。
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No article with this slug found"})
}

// conflictFieldErrors はタイトル／スラッグ衝突をフィールドエラー形式に変換します。
// 一意性制約はバリデーションの一部としてクライアントに提示します。
func conflictFieldErrors(err error) (api.FieldErrors, bool) {
	switch {
	case errors.Is(err, domain.ErrTitleAlreadyExists):
		return api.FieldErrors{"title": {"The title has already been taken."}}, true
	case errors.Is(err, domain.ErrSlugAlreadyExists):
		return api.FieldErrors{"title": {"The title conflicts with the URL of an existing article."}}, true
	case errors.Is(err, domain.ErrTitleNotSluggable):
		return api.FieldErrors{"title": {"The title must contain at least one letter or digit."}}, true
	default:
		return nil, false
	}
}

// List は記事一覧APIエンドポイントを処理します。
// 一覧には本文を含めず、{title, slug, summary}のみを返します。
func (h *BlogHandler) List(c *gin.Context) {
	articles, err := h.blog.List(c.Request.Context())
	if err != nil {
		storageError(c, "list", err)
		return
	}

	items := make([]dto.ArticleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ArticleListItem{
			Title:   a.Title,
			Slug:    a.Slug,
			Summary: a.Summary,
		})
	}
	c.JSON(http.StatusOK, items)
}

// Create は記事作成APIエンドポイントを処理します。
// 成功時は201と新しい記事のスラッグを返します。
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create article validation failed", "error", err, "remote_addr", c.ClientIP())
		if fe, ok := api.ValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	slug, err := h.blog.Create(c.Request.Context(), req.Title, req.Summary, req.Content)
	if err != nil {
		if fe, ok := conflictFieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		storageError(c, "create", err)
		return
	}

	slog.Info("article created", "slug", slug, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.SlugResponse{Slug: slug})
}

// Get は記事詳細APIエンドポイントを処理します。
// 詳細では本文と作成日時を含む全フィールドを返します。
func (h *BlogHandler) Get(c *gin.Context) {
	article, err := h.blog.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			notFound(c)
			return
		}
		storageError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleDetail{
		Title:     article.Title,
		Slug:      article.Slug,
		Summary:   article.Summary,
		Content:   article.Content,
		CreatedOn: article.CreatedAt,
	})
}

// Update は記事の部分更新APIエンドポイントを処理します。
// 供給されたフィールドのみを変更します。タイトルを変更してもスラッグは
// 再生成されません。
func (h *BlogHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.UpdateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update article validation failed", "slug", slug, "error", err, "remote_addr", c.ClientIP())
		if fe, ok := api.ValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	update := usecase.ArticleUpdate{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
	}
	if err := h.blog.Update(c.Request.Context(), slug, update); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			notFound(c)
			return
		}
		if fe, ok := conflictFieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		storageError(c, "update", err)
		return
	}

	slog.Info("article updated", "slug", slug, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Article updated"})
}

// Delete は記事削除APIエンドポイントを処理します（ハードデリート）。
func (h *BlogHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.blog.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			notFound(c)
			return
		}
		storageError(c, "delete", err)
		return
	}

	slog.Info("article deleted", "slug", slug, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Article deleted"})
}
