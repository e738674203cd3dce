package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"guid-gatherer/config"
	"guid-gatherer/models"
	"guid-gatherer/repositories"
	"guid-gatherer/utils"
)

type recordingMailer struct {
	sent chan string
}

func (m *recordingMailer) SendWelcome(to, name string) error {
	m.sent <- to
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *repositories.MemoryUserRepository, *recordingMailer) {
	t.Helper()
	users := repositories.NewMemoryUserRepository()
	mailer := &recordingMailer{sent: make(chan string, 4)}
	svc := NewAuthService(users, NewTokenService("secret", time.Hour), mailer)
	svc.cost = bcrypt.MinCost
	return svc, users, mailer
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	ctx := context.Background()
	svc, users, mailer := newAuthService(t)

	result, err := svc.Register(ctx, models.RegisterInput{
		Email:    "  Ann@Example.com ",
		Password: "secret1",
		Name:     "Ann",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ann@example.com", result.User.Email)

	stored, err := users.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	user, err := svc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.Empty(t, user.Password)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "ann@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome mail not sent")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterInput{Email: "bad", Password: "123", Name: ""})
	var validationErr *utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Violations, 3)
}

func TestRegisterRejectsPasswordOverBcryptLimit(t *testing.T) {
	svc, users, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Email:    "ann@example.com",
		Password: strings.Repeat("é", 40),
		Name:     "Ann",
	})
	var validationErr *utils.ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	assert.Equal(t, "password", validationErr.Violations[0].Field)
	assert.Equal(t, fiber.StatusBadRequest, utils.StatusOf(err))

	_, err = users.FindByEmail(context.Background(), "ann@example.com")
	assert.True(t, errors.Is(err, utils.ErrRecordNotFound))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	input := models.RegisterInput{Email: "ann@example.com", Password: "secret1", Name: "Ann"}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	input.Email = "ANN@example.com"
	_, err = svc.Register(ctx, input)
	var dupErr *utils.DuplicateError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, 409, utils.StatusOf(err))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(ctx, models.RegisterInput{Email: "ann@example.com", Password: "secret1", Name: "Ann"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, models.LoginInput{Email: "Ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	_, wrongPassword := svc.Login(ctx, models.LoginInput{Email: "ann@example.com", Password: "nope!!"})
	_, unknownEmail := svc.Login(ctx, models.LoginInput{Email: "bob@example.com", Password: "secret1"})

	var authErr *utils.AuthError
	require.True(t, errors.As(wrongPassword, &authErr))
	require.True(t, errors.As(unknownEmail, &authErr))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginValidation(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginInput{})
	var validationErr *utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Violations, 2)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc, _, _ := newAuthService(t)
	token, _, err := svc.tokens.Issue(12345)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestNewMailerWithoutSMTPIsNoop(t *testing.T) {
	_, ok := NewMailer(&config.Config{}).(NoopMailer)
	assert.True(t, ok)
}
