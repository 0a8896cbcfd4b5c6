package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/auth"
)

// Built-in operator account, accepted when the sheet has no matching row or
// cannot be reached
const (
	fallbackEmail    = "admin@drblogistica.com"
	fallbackPassword = "123456"
)

func fallbackUser() models.User {
	return models.User{
		ID:     "u-admin",
		Name:   "Administrador Operacional",
		Email:  fallbackEmail,
		Role:   "Gerente",
		Avatar: "A",
	}
}

// Login checks the credentials against the users sheet, issues a token and
// opens a session
func (uc *AuthUC) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := uc.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := models.Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: models.Now(),
	}
	if err := uc.sessionRepo.SaveSession(ctx, session, time.Until(expiresAt)); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if uc.operations != nil {
		uc.operations.Start(ctx)
	}

	logger.InfoCtx(ctx, "Operator logged in",
		logger.String("user_id", user.ID),
		logger.String("role", user.Role))

	return &models.LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *AuthUC) authenticate(ctx context.Context, email, password string) (models.User, error) {
	rows, err := uc.authGW.FetchUserRows(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Users sheet unavailable", logger.ErrorField(err))
		if uc.isFallback(email, password) {
			return fallbackUser(), nil
		}
		return models.User{}, fmt.Errorf("%w: %v", auth.ErrAuthUnavailable, err)
	}

	wanted := strings.ToLower(strings.TrimSpace(email))
	for _, row := range rows {
		rowEmail := utils.Stringify(row.Email)
		rowPassword := utils.Stringify(row.Password)
		if rowEmail == "" || rowPassword == "" {
			continue
		}
		if strings.ToLower(strings.TrimSpace(rowEmail)) == wanted && rowPassword == password {
			return userFromRow(row), nil
		}
	}

	if uc.isFallback(email, password) {
		logger.WarnCtx(ctx, "Using built-in operator account")
		return fallbackUser(), nil
	}
	return models.User{}, auth.ErrInvalidCredentials
}

func (uc *AuthUC) isFallback(email, password string) bool {
	return uc.cfg.Auth.FallbackEnabled && email == fallbackEmail && password == fallbackPassword
}

func userFromRow(row models.SheetUserRow) models.User {
	id := utils.Stringify(row.ID)
	if id == "" {
		id = "u-google"
	}
	firstName := utils.Stringify(row.FirstName)
	role := utils.Stringify(row.Sector)
	if role == "" {
		role = "Operação"
	}

	return models.User{
		ID:     id,
		Name:   strings.TrimSpace(firstName + " " + utils.Stringify(row.LastName)),
		Email:  utils.Stringify(row.Email),
		Role:   role,
		Avatar: models.AvatarFor(firstName),
	}
}

// Logout ends the session. When nobody is left logged in the background
// operations stop and the working data is reset.
func (uc *AuthUC) Logout(ctx context.Context, userID string) error {
	if err := uc.sessionRepo.DeleteSession(ctx, userID); err != nil {
		return err
	}

	stopped := false
	if uc.operations != nil {
		var err error
		if stopped, err = uc.operations.StopIfIdle(ctx); err != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "Operator logged out",
		logger.String("user_id", userID),
		logger.Bool("operations_stopped", stopped))
	return nil
}

// ValidateSession reports whether the user is still logged in
func (uc *AuthUC) ValidateSession(ctx context.Context, userID string) (bool, error) {
	session, err := uc.sessionRepo.GetSession(ctx, userID)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

// Me returns the operator behind a live session
func (uc *AuthUC) Me(ctx context.Context, userID string) (models.User, error) {
	session, err := uc.sessionRepo.GetSession(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if session == nil {
		return models.User{}, auth.ErrSessionNotFound
	}
	return session.User(), nil
}
