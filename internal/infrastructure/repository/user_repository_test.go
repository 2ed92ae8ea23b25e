package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/domain/user"
)

func TestUserRepository_Create_AssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	u := &user.User{Pseudo: "ash", Email: "ash@x.com", Password: "hashed"}
	err := repo.Create(u)

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	err := repo.Create(&user.User{Pseudo: "misty", Email: "ash@x.com", Password: "hashed"})

	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = ?`)).
		WithArgs("ash@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pseudo", "email", "password", "created_at"}).
			AddRow("u-1", "ash", "ash@x.com", "hashed", created))

	u, err := repo.GetByEmail("ash@x.com")
	require.NoError(t, err)

	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "ash", u.Pseudo)
	assert.Equal(t, "hashed", u.Password)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = ?`)).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail("nobody@x.com")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
