package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rghazali/fitfinder/internal/model"
)

// UserRepo manages persistence for users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// UpsertLogin records a successful login.  A new subject inserts a full
// row; a known subject only refreshes last_login.  The whole operation is a
// single INSERT ... ON DUPLICATE KEY UPDATE keyed on the user_id unique
// index, so concurrent logins for the same subject cannot race a
// check-then-act window.
func (r *UserRepo) UpsertLogin(ctx context.Context, externalID, email, name, nickname string) error {
	externalID = strings.TrimSpace(externalID)
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (user_id, email, name, nickname, last_login)
		 VALUES (?,?,?,?,UTC_TIMESTAMP())
		 ON DUPLICATE KEY UPDATE last_login = UTC_TIMESTAMP()`,
		externalID, email, name, nickname)
	return classify(err)
}

// GetByExternalID fetches a user by the identity provider's subject.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (model.User, error) {
	var u model.User
	var last sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,email,name,nickname,last_login FROM users WHERE user_id=? LIMIT 1",
		strings.TrimSpace(externalID)).
		Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Nickname, &last)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if last.Valid {
		u.LastLogin = last.Time
	}
	return u, nil
}

// ListAll returns every user ordered by internal id.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,email,name,nickname,last_login FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		var last sql.NullTime
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Nickname, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			u.LastLogin = last.Time
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
