package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jp903/scout/core"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, company, avatar_url, google_id, created_at, updated_at, last_login_at`

func scanUser(row pgx.Row) (*core.User, error) {
	u := &core.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
		&u.Company, &u.AvatarURL, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		return nil, mapError(err, core.ErrUserNotFound)
	}
	return u, nil
}

func (a *Adapter) CreateUser(ctx context.Context, u *core.User) error {
	q := `INSERT INTO users (id, email, password_hash, first_name, last_name, phone, company, avatar_url, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := a.pool.QueryRow(ctx, q, u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone,
		u.Company, u.AvatarURL, u.GoogleID).Scan(&u.CreatedAt, &u.UpdatedAt)
	return mapError(err, nil)
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	return scanUser(a.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	return scanUser(a.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (a *Adapter) GetUserByGoogleID(ctx context.Context, googleID string) (*core.User, error) {
	return scanUser(a.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID))
}

func (a *Adapter) UpdateUser(ctx context.Context, u *core.User) error {
	q := `UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, company = $5, avatar_url = $6, google_id = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := a.pool.QueryRow(ctx, q, u.ID, u.FirstName, u.LastName, u.Phone, u.Company, u.AvatarURL, u.GoogleID).Scan(&u.UpdatedAt)
	return mapError(err, core.ErrUserNotFound)
}

func (a *Adapter) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	tag, err := a.pool.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, userID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}
