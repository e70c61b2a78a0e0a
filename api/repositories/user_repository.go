package repositories

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ad92co/FKMap/api/models"
)

var ErrEmailTaken = errors.New("email is already registered")

// interface
type UserRepository interface {
	CreateUser(email string, displayName string, passwordHash string) (uuid.UUID, error)
	GetUserByUUID(id uuid.UUID) (*models.User, error)
	GetPasswordHashByEmail(email string) (uuid.UUID, string, error)
}

// implementation
type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) CreateUser(email string, displayName string, passwordHash string) (uuid.UUID, error) {
	var exists bool
	err := ur.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)",
		email,
	).Scan(&exists)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, ErrEmailTaken
	}

	var id uuid.UUID
	err = ur.db.QueryRow(
		"INSERT INTO users (email, display_name, password_hash) VALUES ($1, $2, $3) RETURNING uuid",
		email, displayName, passwordHash,
	).Scan(&id)
	return id, err
}

func (ur *userRepository) GetUserByUUID(id uuid.UUID) (*models.User, error) {
	var user models.User

	err := ur.db.QueryRow(
		`SELECT uuid, email, display_name, created_at, updated_at
		 FROM users WHERE uuid = $1`,
		id,
	).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // user not found
		}
		return nil, err
	}

	return &user, nil
}

func (ur *userRepository) GetPasswordHashByEmail(email string) (uuid.UUID, string, error) {
	var id uuid.UUID
	var hash string

	err := ur.db.QueryRow(
		"SELECT uuid, password_hash FROM users WHERE email = $1",
		email,
	).Scan(&id, &hash)
	if err != nil {
		return uuid.Nil, "", err
	}

	return id, hash, nil
}
