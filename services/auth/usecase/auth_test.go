package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/auth"
	"github.com/victoreduardo21/drb-operacao/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT:  models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "drb-operacao"},
		Auth: models.AuthConfig{FallbackEnabled: true},
	}
}

type authMocks struct {
	gw   *mocks.MockAuthGW
	repo *mocks.MockSessionRepo
	ops  *mocks.MockOperationsSession
}

func newTestAuthUC(t *testing.T, cfg *models.Config) (*AuthUC, authMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		gw:   mocks.NewMockAuthGW(ctrl),
		repo: mocks.NewMockSessionRepo(ctrl),
		ops:  mocks.NewMockOperationsSession(ctrl),
	}
	return NewAuthUC(cfg, m.gw, m.repo, m.ops), m
}

var sheetRows = []models.SheetUserRow{
	{ID: "u-77", Email: " Joao@DRB.com ", Password: "segredo", FirstName: "joão", LastName: "Souza", Sector: "Tráfego"},
	{Email: "maria@drb.com", Password: 1234.0, FirstName: "Maria"},
	{Email: nil, Password: "x"},
}

func TestLogin_SheetUser(t *testing.T) {
	// Arrange
	uc, m := newTestAuthUC(t, testConfig())
	m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(sheetRows, nil)
	m.repo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session, ttl time.Duration) error {
			assert.Equal(t, "u-77", s.UserID)
			assert.Equal(t, "Tráfego", s.Role)
			assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
			return nil
		})
	m.ops.EXPECT().Start(gomock.Any())

	// Act
	result, err := uc.Login(context.Background(), "joao@drb.com", "segredo")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.User{
		ID:     "u-77",
		Name:   "joão Souza",
		Email:  " Joao@DRB.com ",
		Role:   "Tráfego",
		Avatar: "J",
	}, result.User)

	claims, err := jwtpkg.ValidateToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "u-77", claims.UserID)
	assert.Equal(t, "drb-operacao", claims.Issuer)
}

func TestLogin_SheetUserDefaults(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(sheetRows, nil)
	m.repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.ops.EXPECT().Start(gomock.Any())

	result, err := uc.Login(context.Background(), "MARIA@drb.com", "1234")

	require.NoError(t, err)
	assert.Equal(t, "u-google", result.User.ID)
	assert.Equal(t, "Maria", result.User.Name)
	assert.Equal(t, "Operação", result.User.Role)
	assert.Equal(t, "M", result.User.Avatar)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "joao@drb.com", "Segredo"},
		{"unknown email", "ninguem@drb.com", "segredo"},
		{"fallback email wrong password", "admin@drblogistica.com", "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestAuthUC(t, testConfig())
			m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(sheetRows, nil)

			result, err := uc.Login(context.Background(), tt.email, tt.password)

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.Equal(t, "Credenciais inválidas", err.Error())
			assert.Nil(t, result)
		})
	}
}

func TestLogin_FallbackAccount(t *testing.T) {
	tests := []struct {
		name  string
		rows  []models.SheetUserRow
		gwErr error
	}{
		{"not in sheet", sheetRows, nil},
		{"sheet unreachable", nil, errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestAuthUC(t, testConfig())
			m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(tt.rows, tt.gwErr)
			m.repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			m.ops.EXPECT().Start(gomock.Any())

			result, err := uc.Login(context.Background(), "admin@drblogistica.com", "123456")

			require.NoError(t, err)
			assert.Equal(t, fallbackUser(), result.User)
		})
	}
}

func TestLogin_FallbackDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.FallbackEnabled = false
	uc, m := newTestAuthUC(t, cfg)
	m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(sheetRows, nil)

	_, err := uc.Login(context.Background(), "admin@drblogistica.com", "123456")

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_SheetUnavailable(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := uc.Login(context.Background(), "joao@drb.com", "segredo")

	assert.ErrorIs(t, err, auth.ErrAuthUnavailable)
}

func TestLogin_SessionStoreFailure(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	m.gw.EXPECT().FetchUserRows(gomock.Any()).Return(sheetRows, nil)
	m.repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := uc.Login(context.Background(), "joao@drb.com", "segredo")

	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name    string
		stopped bool
	}{
		{"last operator", true},
		{"others still logged in", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestAuthUC(t, testConfig())
			gomock.InOrder(
				m.repo.EXPECT().DeleteSession(gomock.Any(), "u-admin").Return(nil),
				m.ops.EXPECT().StopIfIdle(gomock.Any()).Return(tt.stopped, nil),
			)

			assert.NoError(t, uc.Logout(context.Background(), "u-admin"))
		})
	}
}

func TestLogout_StopCheckFailure(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	m.repo.EXPECT().DeleteSession(gomock.Any(), "u-admin").Return(nil)
	m.ops.EXPECT().StopIfIdle(gomock.Any()).Return(false, errors.New("redis down"))

	assert.Error(t, uc.Logout(context.Background(), "u-admin"))
}

func TestLogout_DeleteFailure(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	m.repo.EXPECT().DeleteSession(gomock.Any(), "u-admin").Return(errors.New("redis down"))

	assert.Error(t, uc.Logout(context.Background(), "u-admin"))
}

func TestValidateSessionAndMe(t *testing.T) {
	uc, m := newTestAuthUC(t, testConfig())
	session := &models.Session{UserID: "u-admin", Name: "Administrador Operacional", Role: "Gerente", Avatar: "A"}

	m.repo.EXPECT().GetSession(gomock.Any(), "u-admin").Return(session, nil).Times(2)
	m.repo.EXPECT().GetSession(gomock.Any(), "gone").Return(nil, nil).Times(2)

	ok, err := uc.ValidateSession(context.Background(), "u-admin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.ValidateSession(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, ok)

	user, err := uc.Me(context.Background(), "u-admin")
	require.NoError(t, err)
	assert.Equal(t, "Administrador Operacional", user.Name)

	_, err = uc.Me(context.Background(), "gone")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}
