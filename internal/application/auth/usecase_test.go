package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplysight/supplysight-api/internal/application/auth"
	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/domain"
	"github.com/supplysight/supplysight-api/internal/infrastructure/memory"
	pkgjwt "github.com/supplysight/supplysight-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	return auth.NewAuthUseCase(memory.NewStore().Users(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "supplysight-test",
	})
}

func TestRegisterUser_RolPorDefectoViewer(t *testing.T) {
	uc := newAuthUC(t)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@supplysight.local",
		Password: "secreto-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer", user.Role)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@supplysight.local", user.Name, "sin nombre se usa el email")
}

func TestRegisterUser_RolDesconocidoRechazado(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@supplysight.local",
		Password: "secreto-123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newAuthUC(t)

	req := dto.RegisterRequest{Email: "ana@supplysight.local", Password: "secreto-123"}
	_, err := uc.RegisterUser(req)
	require.NoError(t, err)

	_, err = uc.RegisterUser(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// el chequeo de unicidad no distingue mayúsculas
	req.Email = "ANA@supplysight.local"
	_, err = uc.RegisterUser(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	uc := newAuthUC(t)

	registered, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@supplysight.local",
		Password: "secreto-123",
		Role:     "admin",
	})
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "admin@supplysight.local", Password: "secreto-123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, login.User.ID)

	userID, role, err := pkgjwt.Parse(testSecret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@supplysight.local", Password: "secreto-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@supplysight.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@supplysight.local", Password: "secreto-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
