package account

import (
	"fmt"

	accountRepo "medcrm/database/repository/account"
	"medcrm/models"
)

// AccountService manages dashboard accounts and their sessions.
type AccountService interface {
	Register(req models.RegisterAccountRequest, deviceIP string) (*models.AuthResponse, error)
	SignIn(req models.SignInRequest, deviceIP string) (*models.AuthResponse, error)
	SignOut(accountID string) error

	GetAccountByID(id string) (*models.Account, error)
	UpdateAccount(id string, updates map[string]interface{}) (*models.Account, error)
	ChangePassword(id, currentPassword, newPassword string) error
	DeleteAccount(id string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}

func NewDefaultAccountService(repo accountRepo.AccountRepository) (*DefaultAccountService, error) {
	if repo == nil {
		return nil, fmt.Errorf("account service initialization error: repository is nil")
	}
	return &DefaultAccountService{Repo: repo}, nil
}
