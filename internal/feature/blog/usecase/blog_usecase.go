// Package usecase はblogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"blog_backend/internal/feature/blog/domain"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/shared/slug"
)

// ArticleUpdate は部分更新で変更可能なフィールドのみを列挙する値オブジェクトです。
// slugとcreatedAtは列挙されていないため、更新経路から書き換えることはできません。
// nilのフィールドは変更されません。
type ArticleUpdate struct {
	Title   *string
	Summary *string
	Content *string
}

// IsEmpty はすべてのフィールドがnilかどうかを返します。
func (u ArticleUpdate) IsEmpty() bool {
	return u.Title == nil && u.Summary == nil && u.Content == nil
}

// ArticleRepository は記事エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ArticleRepository interface {
	// List は全記事を挿入順で返します。
	List(ctx context.Context) ([]*entity.Article, error)

	// Create は新しい記事を永続化します。タイトルまたはスラッグが既存の記事と
	// 重複する場合、domain.ErrTitleAlreadyExists / domain.ErrSlugAlreadyExistsを返します。
	Create(ctx context.Context, article *entity.Article) error

	// FindBySlug はスラッグで記事を取得します。
	// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// Update は指定された記事の変更可能フィールドのみを更新します。
	Update(ctx context.Context, slug string, update ArticleUpdate) error

	// Delete は記事を完全に削除します。
	Delete(ctx context.Context, slug string) error
}

// blogUsecase は記事CRUDのビジネスロジックを実装します。
type blogUsecase struct {
	articles ArticleRepository
}

// NewBlogUsecase はblogUsecaseの新しいインスタンスを生成します。
func NewBlogUsecase(articles ArticleRepository) *blogUsecase {
	return &blogUsecase{articles: articles}
}

// List は全記事を挿入順で返します。
func (u *blogUsecase) List(ctx context.Context) ([]*entity.Article, error) {
	return u.articles.List(ctx)
}

// Create はタイトルからスラッグを生成して記事を永続化し、スラッグを返します。
// スラッグは作成時に一度だけ決まり、以後のタイトル編集でも変わりません。
// 異なるタイトルが同一スラッグに正規化される場合は衝突として拒否します。
func (u *blogUsecase) Create(ctx context.Context, title, summary, content string) (string, error) {
	s := slug.Slugify(title)
	if s == "" {
		return "", domain.ErrTitleNotSluggable
	}

	article := &entity.Article{
		Title:   title,
		Slug:    s,
		Summary: summary,
		Content: content,
	}
	if err := u.articles.Create(ctx, article); err != nil {
		return "", err
	}

	return article.Slug, nil
}

// Get はスラッグで記事を取得します。
func (u *blogUsecase) Get(ctx context.Context, slug string) (*entity.Article, error) {
	return u.articles.FindBySlug(ctx, slug)
}

// Update は記事の変更可能フィールドのみを部分更新します。
// タイトルを変更してもスラッグは再生成されません。
func (u *blogUsecase) Update(ctx context.Context, slug string, update ArticleUpdate) error {
	return u.articles.Update(ctx, slug, update)
}

// Delete は記事を完全に削除します（論理削除ではありません）。
func (u *blogUsecase) Delete(ctx context.Context, slug string) error {
	return u.articles.Delete(ctx, slug)
}
