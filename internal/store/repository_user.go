package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles clinician account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The plaintext Password field is never stored; callers must set
// PasswordHash before calling. A unique-violation on the login column maps
// to [ErrLoginAlreadyExists].
func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := u.db.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash)

	var created models.User
	err := row.Scan(
		&created.UserID,
		&created.Login,
		&created.Name,
		&created.PasswordHash,
		&created.CreatedAt,
	)
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("login", user.Login).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, u.db.wrapClassified(err))
	}

	return created, nil
}

// FindUserByLogin looks an account up by login. An empty result set maps to
// [ErrNoUserWasFound].
func (u *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := u.db.QueryRowContext(ctx, findUserByLogin, login)

	var found models.User
	err := row.Scan(
		&found.UserID,
		&found.Login,
		&found.Name,
		&found.PasswordHash,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "userRepository.FindUserByLogin").
			Str("login", login).
			Msg("failed to query user by login")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
