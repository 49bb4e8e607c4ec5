package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"inventory_lending/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-signing-key"

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, Config{
		SigningKey: testSigningKey,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost, // keep tests fast
	})
}

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn     func(ctx context.Context, u models.User) (models.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)
	GetByIDFn    func(ctx context.Context, id int) (*models.User, error)

	createCalls []models.User
	emailCalls  []string
	idCalls     []int
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.emailCalls = append(m.emailCalls, email)
	return m.GetByEmailFn(ctx, email)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	m.idCalls = append(m.idCalls, id)
	return m.GetByIDFn(ctx, id)
}

// --- Register tests ---

func TestAuthService_Register_HashesPasswordAndPersists(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, u models.User) (models.User, error) {
			u.ID = 42
			return u, nil
		},
	}
	svc := newTestAuthService(mock)

	u, err := svc.Register(context.Background(), "alice", "alice@x.com", "s3cr3t")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID != 42 || u.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	stored := mock.createCalls[0]
	if stored.PasswordHash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(stored.PasswordHash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailWritesNothing(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
		CreateFn: func(ctx context.Context, u models.User) (models.User, error) {
			t.Fatal("Create must not be called when the email exists")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.Register(context.Background(), "alice", "taken@x.com", "pw")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got: %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_EmptyPassword(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, u models.User) (models.User, error) {
			t.Fatal("Create should not be called for empty password")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(mock)

	if _, err := svc.Register(context.Background(), "bob", "bob@x.com", "   "); err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
}

// --- Login tests ---

func TestAuthService_Login_SuccessIssuesVerifiableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{ID: 7, Username: "diana", Email: "diana@x.com", PasswordHash: string(hash)}

	mock := &mockUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email != "diana@x.com" {
				t.Fatalf("expected lookup by diana@x.com, got %q", email)
			}
			return user, nil
		},
	}
	svc := newTestAuthService(mock)

	got, token, err := svc.Login(context.Background(), "diana@x.com", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got.ID != 7 || token == "" {
		t.Fatalf("unexpected login result: user=%+v token=%q", got, token)
	}

	// The token resolves back to the identity that logged in.
	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if uid != 7 {
		t.Fatalf("expected user id 7 from token, got %d", uid)
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cases := []struct {
		name string
		repo *mockUserRepo
	}{
		{
			name: "unknown email",
			repo: &mockUserRepo{
				GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
					return nil, nil
				},
			},
		},
		{
			name: "wrong password",
			repo: &mockUserRepo{
				GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
					return &models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestAuthService(tc.repo)
			_, _, err := svc.Login(context.Background(), "eve@x.com", "wrong")
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
			}
		})
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := newTestAuthService(mock)

	if _, _, err := svc.Login(context.Background(), "john@x.com", "pw"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- GetUser tests ---

func TestAuthService_GetUser(t *testing.T) {
	mock := &mockUserRepo{
		GetByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			if id == 7 {
				return &models.User{ID: 7, Username: "diana"}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	u, err := svc.GetUser(context.Background(), 7)
	if err != nil || u.Username != "diana" {
		t.Fatalf("GetUser(7) = %+v, %v", u, err)
	}

	if _, err := svc.GetUser(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})
	_, err := svc.ParseToken("not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	// Create a token signed with a different key.
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(badToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	// Issue an already expired token using the same signing key.
	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	now := time.Now()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})

	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}
