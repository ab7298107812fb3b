package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/samedayramps/samedayramps-application/auth"
	"github.com/samedayramps/samedayramps-application/entity"
)

type fakeAdminRepo struct {
	byEmail map[string]*entity.AdminUser
}

func (f *fakeAdminRepo) StoreAdmin(_ context.Context, a *entity.AdminUser) (*entity.AdminUser, error) {
	f.byEmail[a.Email] = a
	return a, nil
}

func (f *fakeAdminRepo) GetAdminByID(_ context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetAdminByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	return f.byEmail[email], nil
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) *entity.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a := &entity.AdminUser{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
	}
	repo.byEmail[email] = a
	return a
}

func TestLogin(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*entity.AdminUser{}}
	a := seedAdmin(t, repo, "admin@samedayramps.com", "hunter22")
	svc := NewAuthService(repo, "test-secret", time.Hour)

	p, err := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@samedayramps.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, a.ID.String(), p.AdminID)
	require.NotEmpty(t, p.Token)

	claims, err := authpkg.ParseAndValidate("test-secret", p.Token)
	require.NoError(t, err)
	require.Equal(t, a.ID.String(), claims.AdminID)
	require.Equal(t, a.Email, claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*entity.AdminUser{}}
	seedAdmin(t, repo, "admin@samedayramps.com", "hunter22")
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@samedayramps.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*entity.AdminUser{}}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "nobody@samedayramps.com",
		Password: "hunter22",
	})
	require.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*entity.AdminUser{}}
	seedAdmin(t, repo, "admin@samedayramps.com", "hunter22")
	svc := NewAuthService(repo, "test-secret", time.Hour)

	p, err := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@samedayramps.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = authpkg.ParseAndValidate("other-secret", p.Token)
	require.Error(t, err)
}
