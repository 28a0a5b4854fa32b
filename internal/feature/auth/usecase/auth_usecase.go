// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenGenerator は署名付きアクセストークンの発行を抽象化します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
	// TTL は発行されるトークンの有効期間を返します。
	TTL() time.Duration
}

// TokenVerifier はトークンの署名・有効期限検証を抽象化します。
type TokenVerifier interface {
	// VerifyToken はトークンを検証し、発行先のメールアドレスと有効期限を返します。
	// 失敗時はdomain.ErrTokenExpiredまたはdomain.ErrTokenInvalidを返します。
	VerifyToken(token string) (string, time.Time, error)
}

// TokenDenylist はログアウト済みトークンの失効リストを抽象化します。
type TokenDenylist interface {
	// Add はトークンを残り有効期間の間だけ失効リストに登録します。
	Add(ctx context.Context, token string, ttl time.Duration) error
	// Contains はトークンが失効済みかどうかを返します。
	Contains(ctx context.Context, token string) (bool, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	tokens   TokenGenerator
	verifier TokenVerifier
	denylist TokenDenylist
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, verifier TokenVerifier, denylist TokenDenylist) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		verifier: verifier,
		denylist: denylist,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、アクセストークンを発行します。
// メールアドレスが既に登録済みの場合、domain.ErrUserAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, password string) (string, int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", 0, err
	}

	return u.issueToken(user)
}

// Login はユーザーを認証し、成功時にアクセストークンを発行します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, int, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", 0, domain.ErrInvalidCredentials
	}

	return u.issueToken(user)
}

// issueToken はユーザーに対する署名済みトークンと有効期間（秒）を返します。
func (u *authUsecase) issueToken(user *entity.User) (string, int, error) {
	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, int(u.tokens.TTL().Seconds()), nil
}

// ValidateToken はトークンの署名・有効期限・失効状態を検証し、発行先のメールアドレスを返します。
// 失効済みトークンはdomain.ErrTokenInvalidとして扱います。
func (u *authUsecase) ValidateToken(ctx context.Context, token string) (string, error) {
	identity, _, err := u.verifier.VerifyToken(token)
	if err != nil {
		return "", err
	}

	revoked, err := u.denylist.Contains(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to check token denylist: %w", err)
	}
	if revoked {
		return "", domain.ErrTokenInvalid
	}

	return identity, nil
}

// Logout は提示されたトークンを自然失効時刻まで失効リストに登録します。
// 既に無効・期限切れのトークンに対しては何もせず成功します（冪等）。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	_, expiresAt, err := u.verifier.VerifyToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) || errors.Is(err, domain.ErrTokenInvalid) {
			return nil
		}
		return err
	}

	return u.denylist.Add(ctx, token, time.Until(expiresAt))
}
