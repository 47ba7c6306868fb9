package user

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"shopcart/internal/domain"
	userrepo "shopcart/internal/repository/user"
)

type stubRepo struct {
	byEmail    *domain.User
	byUsername *domain.User
	created    *userrepo.CreateUserInput
}

func (s *stubRepo) Create(_ context.Context, in userrepo.CreateUserInput) (*domain.User, error) {
	s.created = &in
	return &domain.User{
		ID:       "u1",
		Email:    in.Email,
		Username: in.Username,
		Active:   true,
	}, nil
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if s.byEmail == nil {
		return nil, domain.ErrNotFound
	}
	return s.byEmail, nil
}

func (s *stubRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	if s.byUsername == nil {
		return nil, domain.ErrNotFound
	}
	return s.byUsername, nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:    "Alice@Example.com",
		Username: "alice77",
		Password: "secret",
		Name:     "Alice",
		LastName: "Doe",
	}
}

func TestRegisterHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", u.Email)
	}
	if repo.created == nil {
		t.Fatal("expected user to be created")
	}
	if repo.created.PasswordHash == "secret" {
		t.Fatal("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubRepo{byEmail: &domain.User{ID: "u0"}}
	svc := New(repo)

	if _, err := svc.Register(context.Background(), validInput()); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("no user should be created")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := &stubRepo{byUsername: &domain.User{ID: "u0"}}
	svc := New(repo)

	if _, err := svc.Register(context.Background(), validInput()); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := New(&stubRepo{})

	cases := []struct {
		name  string
		mutate func(*RegisterInput)
	}{
		{"missing email", func(in *RegisterInput) { in.Email = " " }},
		{"email without at", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short username", func(in *RegisterInput) { in.Username = "bob" }},
		{"short password", func(in *RegisterInput) { in.Password = "1234" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Register(context.Background(), in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
