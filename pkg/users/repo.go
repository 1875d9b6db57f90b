package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, uuid string) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) CreateUser(ctx context.Context, username, passwordHash, uuid string) (User, error) {
	query := `INSERT INTO users (username, password_hash, uuid, created_at)
              VALUES ($1, $2, $3, NOW())
              RETURNING id, username, uuid, created_at`
	row := r.pool.QueryRow(ctx, query, username, passwordHash, uuid)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.UUID, &u.CreatedAt); err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *postgresUserRepository) GetUserByID(ctx context.Context, id int64) (User, error) {
	query := `SELECT id, username, uuid, created_at
              FROM users
              WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.UUID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT id, username, uuid, created_at
              FROM users
              WHERE username = $1`
	row := r.pool.QueryRow(ctx, query, username)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.UUID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *postgresUserRepository) DeleteUser(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
