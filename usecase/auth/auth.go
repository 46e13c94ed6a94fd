package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

const minPasswordLength = 8

type UseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	sessions repository.AuthSessionRepository
	secret   []byte
	issuer   string
	logger   *zap.Logger
}

func New(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	sessions repository.AuthSessionRepository,
	secret, issuer string,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		profiles: profiles,
		sessions: sessions,
		secret:   []byte(secret),
		issuer:   issuer,
		logger:   logger,
	}
}

// LoginResult bundles everything the client needs after authenticating.
type LoginResult struct {
	Token   string              `json:"token"`
	Session *domain.AuthSession `json:"session"`
	User    *domain.User        `json:"user"`
}

// Register creates the user and their default study profile. The profile
// must exist before the first schedule generation, so both writes happen
// here rather than lazily.
func (uc *UseCase) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewError(domain.ErrCodeInvalid, "valid email required")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewError(domain.ErrCodeInvalid, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Status:       "active",
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.profiles.Upsert(ctx, domain.DefaultProfile(user.ID)); err != nil {
		uc.logger.Error("default profile creation failed",
			zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials, opens a Redis session and issues a JWT bound
// to it.
func (uc *UseCase) Login(ctx context.Context, email, password string, ttl time.Duration) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.AuthSession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Session: session, User: user}, nil
}

// Refresh extends the Redis session and issues a fresh JWT.
func (uc *UseCase) Refresh(ctx context.Context, sessionID string, ttl time.Duration) (*LoginResult, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrAuthSessionNotFound
	}

	if err := uc.sessions.Extend(ctx, sessionID, int(ttl.Seconds())); err != nil {
		return nil, err
	}
	session.ExpiresAt = time.Now().Add(ttl)

	token, err := uc.signToken(session.UserID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Session: session}, nil
}

// Logout revokes the Redis session.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(userID, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"iss":        uc.issuer,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
}
