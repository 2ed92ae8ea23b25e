package user

// Repository defines the contract for user storage operations
type Repository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
}
