package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/isdelr/inkwell-be/internal/models"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// AccountStore is the persistence interface for accounts. Email and username
// uniqueness is enforced by the store, not its callers.
type AccountStore interface {
	FindByEmail(email string) (models.Account, error)
	ExistsByUsername(username string) (bool, error)
	Insert(account models.Account) error
}

// SQLiteStore implements AccountStore over a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// FindByEmail retrieves the account with the given email, including the
// password hash. Returns ErrNotFound when no account matches.
func (s *SQLiteStore) FindByEmail(email string) (models.Account, error) {
	var account models.Account
	row := s.db.QueryRow(
		"SELECT id, fullname, email, username, password_hash, profile_img, created_at FROM accounts WHERE email = ?",
		email,
	)
	var createdAt int64
	err := row.Scan(&account.ID, &account.Fullname, &account.Email, &account.Username,
		&account.PasswordHash, &account.ProfileImg, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
	}
	account.CreatedAt = time.UnixMilli(createdAt).UTC()
	return account, nil
}

// ExistsByUsername reports whether an account with the given username exists.
func (s *SQLiteStore) ExistsByUsername(username string) (bool, error) {
	var one int
	row := s.db.QueryRow("SELECT 1 FROM accounts WHERE username = ?", username)
	err := row.Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert persists a new account. Returns ErrConflict when a uniqueness
// constraint is violated.
func (s *SQLiteStore) Insert(account models.Account) error {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		"INSERT INTO accounts(id, fullname, email, username, password_hash, profile_img, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)",
		account.ID, account.Fullname, account.Email, account.Username, account.PasswordHash, account.ProfileImg,
		createdAt.UnixMilli(),
	)
	if err != nil {
		if isConstraintError(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
