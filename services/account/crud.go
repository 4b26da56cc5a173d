package account

import (
	"errors"
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrWrongPassword is returned when a password change fails verification.
var ErrWrongPassword = errors.New("current password is incorrect")

func (s *DefaultAccountService) GetAccountByID(id string) (*models.Account, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultAccountService) UpdateAccount(id string, updates map[string]interface{}) (*models.Account, error) {
	acct, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["full_name"].(string); ok {
		acct.FullName = v
	}
	if v, ok := updates["clinic_name"].(string); ok {
		acct.ClinicName = v
	}
	if v, ok := updates["phone"].(string); ok {
		acct.Phone = v
	}
	acct.UpdatedAt = time.Now()

	if err := s.Repo.Update(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (s *DefaultAccountService) ChangePassword(id, currentPassword, newPassword string) error {
	acct, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acct.PasswordHash = string(hashed)
	// Force a fresh sign-in everywhere after a password change.
	acct.TokenHash = ""
	acct.UpdatedAt = time.Now()
	if err := s.Repo.Update(acct); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if utils.AuthCacheClient != nil {
		if err := utils.DeleteAuthSession(utils.AuthCacheClient, id); err != nil {
			utils.GetLogger().Warn("ChangePassword: failed to drop cached session", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultAccountService) DeleteAccount(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if utils.AuthCacheClient != nil {
		if err := utils.DeleteAuthSession(utils.AuthCacheClient, id); err != nil {
			utils.GetLogger().Warn("DeleteAccount: failed to drop cached session", zap.Error(err))
		}
	}
	return nil
}
