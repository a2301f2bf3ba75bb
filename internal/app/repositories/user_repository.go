package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// ErrEmailExists is returned when an insert hits the users email constraint.
// The constraint closes the old check-then-insert race: two near-simultaneous
// registrations with the same email can no longer both commit.
var ErrEmailExists = errors.New("user with this email already exists")

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a new user and returns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, string(user.Role)).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "name", "email", "password", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "name", "email", "password", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// ListLecturers retrieves all users with the lecturer role
func (r *UserRepository) ListLecturers(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "name", "email", "password", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"role": string(models.RoleLecturer)}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list lecturers SQL")
		return nil, fmt.Errorf("failed to build list lecturers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lecturers query")
		return nil, fmt.Errorf("error querying lecturers: %w", err)
	}
	defer rows.Close()

	lecturers := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning lecturer row")
			return nil, fmt.Errorf("error scanning lecturer row: %w", err)
		}
		lecturers = append(lecturers, user)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating lecturer rows")
		return nil, fmt.Errorf("error iterating lecturer rows: %w", err)
	}

	return lecturers, nil
}

// UpdatePassword replaces a user's stored credential
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", password).
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update password SQL")
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListPlaintextCredentials retrieves users whose stored password is not a
// bcrypt digest. Used by the one-time startup re-hash step.
func (r *UserRepository) ListPlaintextCredentials(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "name", "email", "password", "role", "created_at").
		From("users").
		Where("password NOT LIKE '$2%'").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list plaintext credentials SQL")
		return nil, fmt.Errorf("failed to build plaintext credentials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list plaintext credentials query")
		return nil, fmt.Errorf("error querying plaintext credentials: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
