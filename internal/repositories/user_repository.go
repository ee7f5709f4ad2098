package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO users (
            email, password_hash, first_name, last_name,
            is_active, is_staff, is_superuser, date_joined
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
        RETURNING id, date_joined
    `,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.IsActive,
		u.IsStaff,
		u.IsSuperuser,
	).Scan(&u.ID, &u.DateJoined)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

// GetByEmail matches case-insensitively; the unique index on
// lower(email) keeps this a single-row lookup.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE lower(email)=lower($1)", email)
	return scanUser(row)
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login=$1 WHERE id=$2`, at, id)
	return err
}

func baseSelectUser() string {
	return `
        SELECT id, email, password_hash, first_name, last_name,
               is_active, is_staff, is_superuser, date_joined, last_login
        FROM users
    `
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.DateJoined,
		&u.LastLogin,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
