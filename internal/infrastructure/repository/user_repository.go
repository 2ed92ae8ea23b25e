package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"pokedex/internal/domain/user"
	"pokedex/internal/infrastructure/database"
)

type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO users (id, pseudo, email, password, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Pseudo, u.Email, u.Password, u.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return user.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(email string) (*user.User, error) {
	u := &user.User{}
	err := r.db.QueryRow(
		`SELECT id, pseudo, email, password, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Pseudo, &u.Email, &u.Password, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
