package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/api/middleware"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

func stubToken(t *testing.T, token string) {
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(uint, string, time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func TestRegisterHashesThePassword(t *testing.T) {
	repos, m := newMockRepos(t)
	svc := application.NewUserService(repos)

	m.User.EXPECT().CreateUser(gomock.Any()).Do(func(u *user.User) {
		if u.PasswordHash == "hunter2" {
			t.Fatalf("password stored in the clear")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}
		u.ID = 8
	}).Return(nil)

	u, err := svc.Register(user.RegisterDTO{Username: "beth", Email: "beth@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 8 {
		t.Fatalf("expected id 8, got %d", u.ID)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup: %v", err)
	}

	t.Run("good credentials return a token", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewUserService(repos)
		stubToken(t, "signed-token")

		m.User.EXPECT().GetUserByUsername("beth").Return(user.User{ID: 8, Username: "beth", PasswordHash: string(hash)}, nil)

		u, token, err := svc.Login(user.LoginDTO{Username: "beth", Password: "hunter2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Fatalf("unexpected token: %q", token)
		}
		if u.ID != 8 {
			t.Fatalf("expected user 8, got %d", u.ID)
		}
	})

	t.Run("unknown username and wrong password answer identically", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewUserService(repos)

		m.User.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)
		_, _, unknownErr := svc.Login(user.LoginDTO{Username: "ghost", Password: "hunter2"})

		m.User.EXPECT().GetUserByUsername("beth").Return(user.User{ID: 8, Username: "beth", PasswordHash: string(hash)}, nil)
		_, _, wrongErr := svc.Login(user.LoginDTO{Username: "beth", Password: "wrong"})

		if !apperrors.IsValidation(unknownErr) || !apperrors.IsValidation(wrongErr) {
			t.Fatalf("expected validation errors, got %v / %v", unknownErr, wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Fatalf("answers differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
		}
	})
}

func TestGetUsersReturnsPublicViews(t *testing.T) {
	repos, m := newMockRepos(t)
	svc := application.NewUserService(repos)

	m.User.EXPECT().ListUsers().Return([]user.User{
		{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "x"},
		{ID: 8, Username: "beth", Email: "beth@example.com", PasswordHash: "y"},
	}, nil)

	users, err := svc.GetUsers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "beth" {
		t.Fatalf("unexpected order: %+v", users)
	}
}
