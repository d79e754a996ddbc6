package repositories

import (
	"context"
	"database/sql"
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/sqlite"
	"golang.org/x/crypto/bcrypt"
	"log/slog"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// callers cannot probe which admin accounts exist.
var ErrInvalidCredentials = errors.NewSentinel("invalid credentials")

// AdminRepository manages back-office users for the admin API.
type AdminRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewAdminRepository(db *sqlite.Database, logger *slog.Logger) *AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger.With("source", "AdminRepository"),
	}
}

// Create stores a new admin with a bcrypt password hash.
func (r *AdminRepository) Create(ctx context.Context, username, password string) (*models.Admin, error) {
	if username == "" {
		return nil, errors.Wrap(game.ErrValidation, "username must not be empty")
	}
	if password == "" {
		return nil, errors.Wrap(game.ErrValidation, "password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	admin := models.Admin{
		ID:           0,
		Username:     username,
		PasswordHash: hash,
	}
	res, err := r.db.ReadWrite.NamedExecContext(ctx,
		`INSERT INTO admins (username, password_hash) VALUES (:username, :password_hash)`, admin)
	if err != nil {
		return nil, errors.Wrap(err, "insert admin")
	}
	if admin.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "admin last insert id")
	}
	return &admin, nil
}

// Authenticate verifies the username/password pair and returns the admin, or
// ErrInvalidCredentials.
func (r *AdminRepository) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	stmt := `SELECT id, username, password_hash FROM admins WHERE username = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &admin, stmt, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrInvalidCredentials, "unknown username")
		}
		return nil, errors.Wrap(err, "get admin")
	}
	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return nil, errors.Wrap(ErrInvalidCredentials, "password mismatch")
	}
	return &admin, nil
}
