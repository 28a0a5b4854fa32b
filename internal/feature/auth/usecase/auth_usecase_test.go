package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound // Default: not found
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "mock-jwt-token", nil
}

func (m *mockTokenGenerator) TTL() time.Duration {
	return time.Hour
}

// mockTokenVerifier is a mock implementation of the TokenVerifier interface.
type mockTokenVerifier struct {
	VerifyTokenFunc func(token string) (string, time.Time, error)
}

func (m *mockTokenVerifier) VerifyToken(token string) (string, time.Time, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(token)
	}
	return "user@example.com", time.Now().Add(time.Hour), nil
}

// mockTokenDenylist is a mock implementation of the TokenDenylist interface.
type mockTokenDenylist struct {
	AddFunc      func(ctx context.Context, token string, ttl time.Duration) error
	ContainsFunc func(ctx context.Context, token string) (bool, error)
}

func (m *mockTokenDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, token, ttl)
	}
	return nil
}

func (m *mockTokenDenylist) Contains(ctx context.Context, token string) (bool, error) {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(ctx, token)
	}
	return false, nil
}

func newTestUsecase(users *mockUserRepository, denylist *mockTokenDenylist, verifier *mockTokenVerifier) *authUsecase {
	if users == nil {
		users = &mockUserRepository{}
	}
	if denylist == nil {
		denylist = &mockTokenDenylist{}
	}
	if verifier == nil {
		verifier = &mockTokenVerifier{}
	}
	return NewAuthUsecase(users, &mockTokenGenerator{}, verifier, denylist)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Parallel()

	t.Run("success: password is hashed and a token issued", func(t *testing.T) {
		t.Parallel()

		var created *entity.User
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 1
				created = user
				return nil
			},
		}
		uc := newTestUsecase(users, nil, nil)

		token, expiresIn, err := uc.Register(context.Background(), "user@test.io", "pw")

		require.NoError(t, err)
		assert.Equal(t, "mock-jwt-token", token)
		assert.Equal(t, 3600, expiresIn)

		require.NotNil(t, created, "user should have been persisted")
		assert.Equal(t, "user@test.io", created.Email)
		assert.NotEqual(t, "pw", created.Password, "plaintext password must not be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw")),
			"stored hash should verify against the original password")
	})

	t.Run("failure: duplicate email", func(t *testing.T) {
		t.Parallel()

		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return domain.ErrUserAlreadyExists
			},
		}
		uc := newTestUsecase(users, nil, nil)

		_, _, err := uc.Register(context.Background(), "dup@test.io", "pw")

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	knownUser := &entity.User{ID: 7, Email: "user@test.io", Password: string(hashed)}
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == knownUser.Email {
				return knownUser, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}

	t.Run("success: correct credentials return a token", func(t *testing.T) {
		t.Parallel()

		uc := newTestUsecase(users, nil, nil)

		token, expiresIn, err := uc.Login(context.Background(), "user@test.io", "correct-password")

		require.NoError(t, err)
		assert.Equal(t, "mock-jwt-token", token)
		assert.Equal(t, 3600, expiresIn)
	})

	t.Run("failure: wrong password", func(t *testing.T) {
		t.Parallel()

		uc := newTestUsecase(users, nil, nil)

		_, _, err := uc.Login(context.Background(), "user@test.io", "wrong-password")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("failure: unknown user gets the same generic error", func(t *testing.T) {
		t.Parallel()

		uc := newTestUsecase(users, nil, nil)

		_, _, err := uc.Login(context.Background(), "nobody@test.io", "whatever")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_ValidateToken(t *testing.T) {
	t.Parallel()

	t.Run("success: valid token resolves the identity", func(t *testing.T) {
		t.Parallel()

		uc := newTestUsecase(nil, nil, nil)

		identity, err := uc.ValidateToken(context.Background(), "valid-token")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", identity)
	})

	t.Run("failure: expired token", func(t *testing.T) {
		t.Parallel()

		verifier := &mockTokenVerifier{
			VerifyTokenFunc: func(token string) (string, time.Time, error) {
				return "", time.Time{}, domain.ErrTokenExpired
			},
		}
		uc := newTestUsecase(nil, nil, verifier)

		_, err := uc.ValidateToken(context.Background(), "expired-token")

		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("failure: revoked token is invalid even before expiry", func(t *testing.T) {
		t.Parallel()

		denylist := &mockTokenDenylist{
			ContainsFunc: func(ctx context.Context, token string) (bool, error) {
				return true, nil
			},
		}
		uc := newTestUsecase(nil, denylist, nil)

		_, err := uc.ValidateToken(context.Background(), "revoked-token")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Parallel()

	t.Run("success: token is denylisted for its remaining lifetime", func(t *testing.T) {
		t.Parallel()

		var addedToken string
		var addedTTL time.Duration
		denylist := &mockTokenDenylist{
			AddFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				addedToken = token
				addedTTL = ttl
				return nil
			},
		}
		verifier := &mockTokenVerifier{
			VerifyTokenFunc: func(token string) (string, time.Time, error) {
				return "user@example.com", time.Now().Add(30 * time.Minute), nil
			},
		}
		uc := newTestUsecase(nil, denylist, verifier)

		err := uc.Logout(context.Background(), "live-token")

		require.NoError(t, err)
		assert.Equal(t, "live-token", addedToken)
		assert.Greater(t, addedTTL, 29*time.Minute, "TTL should match the remaining lifetime")
		assert.LessOrEqual(t, addedTTL, 30*time.Minute)
	})

	t.Run("idempotent: expired token logs out silently", func(t *testing.T) {
		t.Parallel()

		added := false
		denylist := &mockTokenDenylist{
			AddFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				added = true
				return nil
			},
		}
		verifier := &mockTokenVerifier{
			VerifyTokenFunc: func(token string) (string, time.Time, error) {
				return "", time.Time{}, domain.ErrTokenExpired
			},
		}
		uc := newTestUsecase(nil, denylist, verifier)

		err := uc.Logout(context.Background(), "expired-token")

		assert.NoError(t, err)
		assert.False(t, added, "expired tokens need no denylist entry")
	})

	t.Run("idempotent: malformed token logs out silently", func(t *testing.T) {
		t.Parallel()

		verifier := &mockTokenVerifier{
			VerifyTokenFunc: func(token string) (string, time.Time, error) {
				return "", time.Time{}, domain.ErrTokenInvalid
			},
		}
		uc := newTestUsecase(nil, nil, verifier)

		err := uc.Logout(context.Background(), "garbage")

		assert.NoError(t, err)
	})
}
