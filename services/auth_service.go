package services

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"

	"guid-gatherer/models"
	"guid-gatherer/types"
	"guid-gatherer/utils"
	"guid-gatherer/validation"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgDuplicateEmail     = "User with this email already exists"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id types.SnowflakeID) (*models.User, error)
}

type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	mailer Mailer
	cost   int
}

func NewAuthService(users UserStore, tokens *TokenService, mailer Mailer) *AuthService {
	if mailer == nil {
		mailer = NoopMailer{}
	}
	return &AuthService{users: users, tokens: tokens, mailer: mailer, cost: bcrypt.DefaultCost}
}

func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*AuthResult, error) {
	input.Email = models.NormalizeEmail(input.Email)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, &utils.DuplicateError{Message: msgDuplicateEmail}
	} else if !errors.Is(err, utils.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hash),
		Name:     input.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var dupErr *utils.DuplicateError
		if errors.As(err, &dupErr) {
			return nil, &utils.DuplicateError{Message: msgDuplicateEmail}
		}
		return nil, err
	}

	go func(email, name string) {
		if err := s.mailer.SendWelcome(email, name); err != nil {
			log.Warnf("welcome mail to %s: %v", email, err)
		}
	}(user.Email, user.Name)

	return s.issue(user)
}

// Login answers unknown emails and wrong passwords with the same error.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (*AuthResult, error) {
	input.Email = models.NormalizeEmail(input.Email)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return nil, &utils.AuthError{Message: msgInvalidCredentials}
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, &utils.AuthError{Message: msgInvalidCredentials}
	}

	return s.issue(user)
}

// Authenticate resolves a bearer token to its user, without the password hash.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
