package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstock-api/internal/application/auth"
	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/techstock-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "techstock-test"
)

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestRegister_OK(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Username:        "ana",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ana", out.Username)
	assert.NotEmpty(t, out.ID)

	// El hash persistido no es el password en claro.
	stored, err := repo.GetByUsername("ana")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_ConfirmacionNoCoincide(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{
		Username:        "ana",
		Password:        "secret-password",
		ConfirmPassword: "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameOcupado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana", Password: "secret-password", ConfirmPassword: "secret-password",
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{
		Username: "ana", Password: "otra-password123", ConfirmPassword: "otra-password123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin_OK(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana", Password: "secret-password", ConfirmPassword: "secret-password",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secret-password"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)

	// El token debe ser verificable con el mismo secret.
	userID, isAdmin, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.False(t, isAdmin)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana", Password: "secret-password", ConfirmPassword: "secret-password",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
