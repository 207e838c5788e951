package userRepo

import "hotelbot/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email, or (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// Count returns the number of user records.
	Count() (int64, error)
}
