package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/internal/application/auth"
	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/pkg/config"
	"github.com/goitom/finance-api/pkg/jwt"
)

const testSecret = "test-secret-32-bytes-minimum-ok!"

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(user *entity.User) error {
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUseCase() (*auth.UseCase, *memUserRepo) {
	repo := newMemUserRepo()
	cfg := config.JWTConfig{Secret: testSecret, Expiration: 60, Issuer: "goitom-finance"}
	return auth.NewUseCase(repo, cfg), repo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(dto.RegisterRequest{
		Email:    "Piet@Example.COM",
		Password: "wachtwoord123",
		FullName: "  Piet de Vries  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "piet@example.com", registered.User.Email)
	assert.Equal(t, "Piet de Vries", registered.User.FullName)
	assert.NotEmpty(t, registered.User.ID)

	userID, email, err := jwt.Parse(testSecret, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)
	assert.Equal(t, "piet@example.com", email)

	logged, err := uc.Login(dto.LoginRequest{Email: "piet@example.com", Password: "wachtwoord123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "piet@example.com", Password: "wachtwoord123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "PIET@example.com", Password: "anderwachtwoord"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "no-at-sign", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "piet@example.com", Password: "kort"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	uc, repo := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "piet@example.com", Password: "wachtwoord123"})
	require.NoError(t, err)

	stored, err := repo.FindByEmail("piet@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "wachtwoord123", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "wachtwoord123")
}

func TestLoginWrongCredentials(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "piet@example.com", Password: "wachtwoord123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "piet@example.com", Password: "verkeerd-wachtwoord"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "onbekend@example.com", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
