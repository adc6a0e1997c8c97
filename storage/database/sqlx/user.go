package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/BurhanAsghar/teacherportal/core/user"
)

var userConstraints = map[string]error{
	"users_username_key": user.ErrUsernameExists,
	"users_email_key":    user.ErrEmailExists,
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckUsernameUniqueness(ctx context.Context, username, email string) error {
	var rows []struct {
		Username string `db:"username"`
		Email    string `db:"email"`
	}
	err := repo.db.SelectContext(
		ctx, &rows,
		`SELECT username, email FROM users WHERE username = $1 OR email = $2`,
		username, email,
	)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	for _, row := range rows {
		if row.Email == email {
			return user.ErrEmailExists
		}
	}
	if len(rows) > 0 {
		return user.ErrUsernameExists
	}
	return nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	_, err := repo.db.ExecContext(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		usr.ID, usr.Username, usr.Email, usr.PasswordHash, usr.CreatedAt,
	)
	if err != nil {
		return user.User{}, constraintErr(err, userConstraints)
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(
		ctx, &usr,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "querying user by ID")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(
		ctx, &usr,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "querying user by email")
	}
	return usr, nil
}
