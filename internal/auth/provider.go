package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/storage"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrNoSecret           = errors.New("auth.jwt_secret is not configured")
)

const minPasswordLength = 8

// Provider authenticates users and issues the ID tokens every other
// operation is scoped by.
type Provider interface {
	SignUp(ctx context.Context, email, displayName, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Verify(ctx context.Context, token string) (*Identity, error)
}

// UserStore is the part of the document store the provider needs.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type Session struct {
	User      models.User
	Token     string
	ExpiresAt time.Time
}

// Identity is what a verified token says about its bearer.
type Identity struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LocalProvider keeps bcrypt password hashes in the document store and signs
// HS256 tokens with the configured secret.
type LocalProvider struct {
	store      UserStore
	secret     []byte
	issuer     string
	ttl        time.Duration
	bcryptCost int

	// Now is overridable in tests.
	Now func() time.Time
}

func NewLocalProvider(store UserStore, cfg config.AuthConfig) (*LocalProvider, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrNoSecret
	}
	ttl := cfg.TokenTTL.Duration
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "stride"
	}
	return &LocalProvider{
		store:      store,
		secret:     []byte(cfg.JWTSecret),
		issuer:     issuer,
		ttl:        ttl,
		bcryptCost: bcrypt.DefaultCost,
		Now:        time.Now,
	}, nil
}

// WithBcryptCost sets the hashing cost used for new passwords.
func (p *LocalProvider) WithBcryptCost(cost int) *LocalProvider {
	p.bcryptCost = cost
	return p
}

func (p *LocalProvider) SignUp(ctx context.Context, email, displayName, password string) (*Session, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
		CreatedAt:    p.Now().UTC(),
	}
	if err := p.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.WithField("user", user.ID).Info("user signed up")
	return p.issue(user)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := p.store.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.WithField("user", user.ID).Debug("password mismatch")
		return nil, ErrInvalidCredentials
	}

	return p.issue(*user)
}

// Verify checks the token signature, issuer and expiry, then makes sure the
// subject still exists.
func (p *LocalProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithIssuer(p.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	if _, err := p.store.GetUserByID(ctx, c.Subject); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", ErrInvalidToken)
		}
		return nil, err
	}

	return &Identity{
		UserID:    c.Subject,
		Email:     c.Email,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

func (p *LocalProvider) issue(user models.User) (*Session, error) {
	now := p.Now()
	expires := now.Add(p.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{User: user, Token: signed, ExpiresAt: expires}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
