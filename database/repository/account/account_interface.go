package accountRepo

import "medcrm/models"

// AccountRepository defines methods for dashboard account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.Account, error)
	// GetByTokenHash retrieves the account whose token_hash matches the provided hash.
	GetByTokenHash(tokenHash string) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}
