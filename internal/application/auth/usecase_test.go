package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/ims-backend/internal/application/auth"
	"github.com/invorya/ims-backend/internal/application/dto"
	"github.com/invorya/ims-backend/internal/application/usecase"
	"github.com/invorya/ims-backend/internal/domain"
	"github.com/invorya/ims-backend/internal/infrastructure/sqlite"
	pkgjwt "github.com/invorya/ims-backend/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ims-backend-test"
)

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *usecase.AuditUseCase) {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	audit := usecase.NewAuditUseCase(s)
	uc := auth.NewAuthUseCase(s, audit, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, audit
}

// El admin sembrado (admin/admin123) puede iniciar sesión y el token
// resultante es verificable con el mismo secret.
func TestLogin_AdminSembrado(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "admin", out.User.Role)

	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, out)
}

// Cada login exitoso deja una entrada LOGIN en auditoría; los fallidos no.
func TestLogin_AuditaSoloExitos(t *testing.T) {
	uc, audit := newAuthUC(t)

	_, _ = uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	logs, err := audit.GetRecentLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "LOGIN", logs[0].Action)
	assert.Equal(t, "admin", logs[0].User)
}
