// Package adapters はblogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"blog_backend/internal/feature/blog/domain"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// articleMySQL はArticleRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type articleMySQL struct {
	db *gorm.DB
}

// articleMySQLがArticleRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ArticleRepository = (*articleMySQL)(nil)

// NewArticleMySQL は指定されたgorm.DB接続でarticleMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewArticleMySQL(db *gorm.DB) *articleMySQL {
	return &articleMySQL{db: db}
}

// duplicateKeyError はユニーク制約違反をドメインエラーに変換します。
// エラーメッセージに含まれるインデックス名／カラム名でタイトル重複と
// スラッグ重複を区別します。MySQLエラー1062に加え、テストで使用する
// SQLiteのエラーも検出します。
func duplicateKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	isDup := errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
	if !isDup && !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return err
	}
	// インデックス名（MySQL）またはカラム名（SQLite）で衝突したキーを判別する
	msg := err.Error()
	if strings.Contains(msg, "uq_articles_slug") || strings.Contains(msg, "articles.slug") {
		return domain.ErrSlugAlreadyExists
	}
	return domain.ErrTitleAlreadyExists
}

// List は全記事を挿入順（ID昇順）で返します。
func (r *articleMySQL) List(ctx context.Context) ([]*entity.Article, error) {
	var articles []*entity.Article
	if err := r.db.WithContext(ctx).Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Create は記事をデータベースに追加します。
// タイトルまたはスラッグの重複はユニーク制約で検出するため、
// 同時作成の競合（check-then-act）は発生しません。
func (r *articleMySQL) Create(ctx context.Context, a *entity.Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return duplicateKeyError(err)
	}
	return nil
}

// FindBySlug はスラッグで記事を取得します。
// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
func (r *articleMySQL) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update は指定された記事の変更可能フィールド（title/summary/content）のみを
// 更新します。slugとcreated_atには一切触れません。
func (r *articleMySQL) Update(ctx context.Context, slug string, update usecase.ArticleUpdate) error {
	// 1. スラッグの存在確認
	a, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if update.IsEmpty() {
		return nil
	}

	// 2. nilでないフィールドだけを更新対象にする
	fields := make(map[string]any, 3)
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Summary != nil {
		fields["summary"] = *update.Summary
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}

	if err := r.db.WithContext(ctx).Model(a).Updates(fields).Error; err != nil {
		return duplicateKeyError(err)
	}
	return nil
}

// Delete は記事を完全に削除します。
// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
func (r *articleMySQL) Delete(ctx context.Context, slug string) error {
	a, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(a).Error
}
