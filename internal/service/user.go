package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jumpingkids/internal/auth"
	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/validate"
)

// UserService covers account registration and authentication.
type UserService interface {
	// Signup registers an account and returns it together with a fresh
	// access token. Returns ErrUsernameTaken when the username is in use.
	Signup(ctx context.Context, in model.UserCreate) (*model.User, string, error)

	// Signin verifies credentials and returns the account together with a
	// fresh access token. Returns ErrInvalidCredentials when either the
	// username or the password does not match.
	Signin(ctx context.Context, creds model.Credentials) (*model.User, string, error)

	// UsernameExists reports whether a username is already registered.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Get returns the account behind an authenticated user id.
	Get(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{users: users, tokens: tokens}
}

func (s *userService) Signup(ctx context.Context, in model.UserCreate) (*model.User, string, error) {
	if err := validate.Struct(in); err != nil {
		return nil, "", err
	}
	if in.Subscription == "" {
		in.Subscription = model.SubscriptionFree
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		UserType:     in.UserType,
		Subscription: in.Subscription,
	})
	if err != nil {
		// The existence check races with concurrent signups; the unique
		// index has the final word.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *userService) Signin(ctx context.Context, creds model.Credentials) (*model.User, string, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(creds.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *userService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, ErrUsernameRequired
	}
	return s.users.ExistsByUsername(ctx, username)
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
