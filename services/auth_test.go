package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/models"
)

// newTestAuth wires the auth service against an in-memory store. The mailer
// carries no API key, so every send fails before reaching the network; the
// reset flow must survive that.
func newTestAuth(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	d := database.New(db)
	mailer := NewMailer("", "", zerolog.Nop())
	auth := NewAuthService(d.UserRepo(), d.PasswordResetRepo(), mailer, []byte("test-secret"), zerolog.Nop())
	return auth, db
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Dana", "Reyes", "dana@example.com", "letters4nd1")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.Name)
	require.NotNil(t, user.Surname)
	assert.Equal(t, "Reyes", *user.Surname)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "letters4nd1", *user.PasswordHash)

	token, loggedIn, err := auth.Login(ctx, "dana@example.com", "letters4nd1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsed, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "", "dana@example.com", "letters4nd1")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "dana@example.com", "wrong-password1")
	assert.ErrorIs(t, err, errs.ErrBadCredentials)

	_, _, err = auth.Login(ctx, "nobody@example.com", "letters4nd1")
	assert.ErrorIs(t, err, errs.ErrBadCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "", "dana@example.com", "letters4nd1")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Other Dana", "", "dana@example.com", "numbers4nd5")
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "", "dana@example.com", "letters4nd1")
	require.NoError(t, err)
	token, _, err := auth.Login(ctx, "dana@example.com", "letters4nd1")
	require.NoError(t, err)

	_, err = auth.ParseToken(token + "x")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)

	_, err = auth.ParseToken("not-a-token")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestPasswordResetSurvivesDeliveryFailure(t *testing.T) {
	auth, db := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Dana", "", "dana@example.com", "letters4nd1")
	require.NoError(t, err)

	// The mailer has no API key so the send fails; the code must still exist.
	require.NoError(t, auth.RequestPasswordReset(ctx, "dana@example.com"))

	var codes []models.PasswordResetCode
	require.NoError(t, db.Find(&codes).Error)
	require.Len(t, codes, 1)
	assert.Equal(t, user.ID, codes[0].UserID)

	require.NoError(t, auth.ResetPassword(ctx, codes[0].Code, "newletters5"))

	_, _, err = auth.Login(ctx, "dana@example.com", "letters4nd1")
	assert.ErrorIs(t, err, errs.ErrBadCredentials)
	_, _, err = auth.Login(ctx, "dana@example.com", "newletters5")
	assert.NoError(t, err)
}

func TestResetCodeCannotBeReplayed(t *testing.T) {
	auth, db := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "", "dana@example.com", "letters4nd1")
	require.NoError(t, err)
	require.NoError(t, auth.RequestPasswordReset(ctx, "dana@example.com"))

	var codes []models.PasswordResetCode
	require.NoError(t, db.Find(&codes).Error)
	require.Len(t, codes, 1)

	require.NoError(t, auth.ResetPassword(ctx, codes[0].Code, "newletters5"))

	err = auth.ResetPassword(ctx, codes[0].Code, "evenmore5ecret")
	assert.ErrorIs(t, err, errs.ErrCodeExpired)
}

func TestPasswordResetUnknownEmailReportsSuccess(t *testing.T) {
	auth, db := newTestAuth(t)
	ctx := context.Background()

	require.NoError(t, auth.RequestPasswordReset(ctx, "nobody@example.com"))

	var codes []models.PasswordResetCode
	require.NoError(t, db.Find(&codes).Error)
	assert.Empty(t, codes)
}
