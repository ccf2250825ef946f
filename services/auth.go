package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/models"
)

// AuthService handles registration, login and the password-reset flow. It is
// the session provider the rest of the API trusts for the acting user id.
type AuthService struct {
	userRepo  *database.UserRepo
	resetRepo *database.PasswordResetRepo
	mailer    *Mailer
	secret    []byte
	tokenTTL  time.Duration
	resetTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(userRepo *database.UserRepo, resetRepo *database.PasswordResetRepo, mailer *Mailer, secret []byte, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
		secret:    secret,
		tokenTTL:  24 * time.Hour,
		resetTTL:  30 * time.Minute,
		logger:    logger,
	}
}

// Register creates a user with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, name, surname, email, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalError("failed to hash password")
	}

	hashStr := string(hash)
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: &hashStr,
	}
	if surname != "" {
		user.Surname = &surname
	}

	if err := s.userRepo.Add(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed token carrying the user id.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || user.PasswordHash == nil {
		return "", nil, errs.NewBadCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.NewBadCredentialsError()
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, errs.NewInternalError("failed to sign token")
	}
	return token, user, nil
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a bearer token and returns the user id it carries.
func (s *AuthService) ParseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errs.NewInvalidTokenError()
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, errs.NewInvalidTokenError()
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError()
	}
	return userID, nil
}

// RequestPasswordReset creates a single-use reset code and mails it. The code
// creation succeeds even when delivery fails; the failure is only logged. An
// unknown email also reports success so the endpoint does not leak which
// addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return errs.NewInternalError("failed to generate reset code")
	}

	reset := &models.PasswordResetCode{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resetRepo.Add(ctx, reset); err != nil {
		return errs.NewDatabaseError("create", "password reset code", err)
	}

	body := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>. It expires in %d minutes.</p>",
		code, int(s.resetTTL.Minutes()))
	if err := s.mailer.Send(ctx, "Password reset", body, []string{user.Email}); err != nil {
		s.logger.Error().Err(err).Str("userId", user.ID.String()).Msg("password reset email delivery failed")
	}
	return nil
}

// ResetPassword consumes a reset code and installs the new password.
func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	reset, err := s.resetRepo.FindByCode(ctx, code)
	if err != nil {
		return errs.NewDatabaseError("find", "password reset code", err)
	}
	if reset == nil || time.Now().After(reset.ExpiresAt) {
		return errs.NewCodeExpiredError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewInternalError("failed to hash password")
	}
	if err := s.userRepo.SetPasswordHash(ctx, reset.UserID, string(hash)); err != nil {
		return errs.NewDatabaseError("update", "user", err)
	}
	if err := s.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return errs.NewDatabaseError("update", "password reset code", err)
	}
	return nil
}

func generateResetCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
