package application

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/api/middleware"
	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
	"github.com/slmontgomery/bugtracking/internal/repository"
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates an account with a bcrypt password hash. Username and
// email collisions surface as duplicate-key errors from the store.
func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := user.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and returns a signed token. Bad username
// and bad password answer identically.
func (s *UserService) Login(input user.LoginDTO) (*user.User, string, error) {
	u, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NewValidation(apperrors.MsgBadCredentials)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", apperrors.NewValidation(apperrors.MsgBadCredentials)
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *UserService) GetUsers() ([]user.Public, error) {
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return nil, err
	}
	out := make([]user.Public, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *UserService) GetUser(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.NewNotFound(apperrors.MsgUserNotFound))
	}
	return &u, nil
}
