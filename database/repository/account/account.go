package accountRepo

import "beautymatch/models"

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// SetFCMToken stores the push token for an account.
	SetFCMToken(id, token string) error
}
