// File: services/account/auth.go
package account

import (
	"errors"
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken signals a registration against an existing email.
var ErrEmailTaken = errors.New("an account with this email already exists")

func (s *DefaultAccountService) Register(req models.RegisterAccountRequest, deviceIP string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		logger.Error("Register: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role != models.RoleAdmin && role != models.RoleStaff {
		role = models.RoleStaff
	}

	now := time.Now()
	acct := &models.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		ClinicName:   req.ClinicName,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := s.issueSession(acct, deviceIP)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(acct); err != nil {
		logger.Error("Register: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account registered", zap.String("accountID", acct.ID), zap.String("email", acct.Email))
	return &models.AuthResponse{Account: *acct, Token: token}, nil
}

func (s *DefaultAccountService) SignIn(req models.SignInRequest, deviceIP string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	acct, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		logger.Error("SignIn: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueSession(acct, deviceIP)
	if err != nil {
		return nil, err
	}
	acct.LastLoginAt = time.Now()
	acct.UpdatedAt = time.Now()
	if err := s.Repo.Update(acct); err != nil {
		logger.Error("SignIn: failed to persist session", zap.Error(err))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account signed in", zap.String("accountID", acct.ID))
	return &models.AuthResponse{Account: *acct, Token: token}, nil
}

// issueSession mints a JWT, stores its hash on the account and caches the
// session in Redis keyed by the account ID.
func (s *DefaultAccountService) issueSession(acct *models.Account, deviceIP string) (string, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Email, utils.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	acct.TokenHash = utils.HashToken(token)

	if utils.AuthCacheClient != nil {
		session := utils.AuthSession{
			AccountID: acct.ID,
			Email:     acct.Email,
			Role:      acct.Role,
			IP:        deviceIP,
			CreatedAt: time.Now(),
		}
		if err := utils.SaveAuthSession(utils.AuthCacheClient, acct.ID, session); err != nil {
			// Redis is a cache here; a miss falls back to Mongo in the middleware.
			utils.GetLogger().Warn("issueSession: failed to cache auth session", zap.Error(err))
		}
	}
	return token, nil
}

// SignOut revokes the stored token hash and drops the cached session.
func (s *DefaultAccountService) SignOut(accountID string) error {
	acct, err := s.Repo.GetByID(accountID)
	if err != nil {
		return err
	}
	acct.TokenHash = ""
	acct.UpdatedAt = time.Now()
	if err := s.Repo.Update(acct); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if utils.AuthCacheClient != nil {
		if err := utils.DeleteAuthSession(utils.AuthCacheClient, accountID); err != nil {
			utils.GetLogger().Warn("SignOut: failed to drop cached session", zap.Error(err))
		}
	}
	return nil
}
