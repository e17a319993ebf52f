package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"placeverse/internal/models"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, name, email, password_hash, role, profile, created_at, updated_at"

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Profile,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create saves a new user. Email uniqueness violations map to ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Name, req.Email, req.PasswordHash, req.Role)

	user, err := r.scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error creating user: duplicate email %s", req.Email)
			return nil, fmt.Errorf("failed to create user: %w", storage.ErrDuplicateEmail)
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// UpdateProfile overwrites the user's profile blob. Role and email stay fixed.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, profile []byte) (*models.User, error) {
	query := `
		UPDATE users
		SET profile = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id, profile))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for profile update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating profile for user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update profile for user %s: %w", id, err)
	}

	return user, nil
}
