//go:build e2e

package helper

import (
	"testing"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/jwt"
	"parkhub/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// AuthHelper mints bearer tokens directly; the API has no login endpoint,
// tokens are issued by an external identity provider in production.
type AuthHelper struct {
	cfg config.JWTConfig
}

func NewAuthHelper(cfg config.JWTConfig) *AuthHelper {
	return &AuthHelper{cfg: cfg}
}

func (h *AuthHelper) GenerateToken(t *testing.T, clientID uuid.UUID, role client.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(clientID, role)
	require.NoError(t, err)
	return token
}

func (h *AuthHelper) CreateExpiredToken(t *testing.T, clientID uuid.UUID, role client.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(clientID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateAndAuthorize seeds an account row and returns its id plus a valid token.
func (h *AuthHelper) CreateAndAuthorize(t *testing.T, db dbtest.DBLike, email string, role client.Role) (uuid.UUID, string) {
	t.Helper()
	clientID := dbtest.CreateTestClient(t, db, email, string(role))
	return clientID, h.GenerateToken(t, clientID, role)
}
