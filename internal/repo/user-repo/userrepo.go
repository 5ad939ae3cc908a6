package userrepo

import (
	"context"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) find(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.find(ctx, "SELECT id, email, password_hash, is_admin, created_at FROM users WHERE email = LOWER($1)", email)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.find(ctx, "SELECT id, email, password_hash, is_admin, created_at FROM users WHERE id = $1", id)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, is_admin)
		VALUES (LOWER($1), $2, $3)
		RETURNING id, email, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.IsAdmin).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save user", zap.Error(err))
		}
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetAdmin(ctx context.Context, email string, isAdmin bool) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET is_admin = $2 WHERE email = LOWER($1)", email, isAdmin)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
