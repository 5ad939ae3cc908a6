package domainrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const domainColumns = `id, user_id, name, tld, status, expires_at, auto_renew, auto_renew_payment_method,
        locked, registrar_mode, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Domain, error) {
	var d domain.Domain
	err := r.db.QueryRow(ctx, query, args...).Scan(&d.ID, &d.UserID, &d.Name, &d.TLD, &d.Status, &d.ExpiresAt,
		&d.AutoRenew, &d.AutoRenewPaymentMethod, &d.Locked, &d.Mode, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find domain", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Domain, error) {
	query := `
        SELECT ` + domainColumns + `
        FROM domains
        WHERE name = $1
    `
	return r.findOne(ctx, query, name)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Domain, error) {
	query := `
        SELECT ` + domainColumns + `
        FROM domains
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// LockByID reads the domain with a row lock. It must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Domain, error) {
	query := `
        SELECT ` + domainColumns + `
        FROM domains
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, id)
}

// Upsert creates the domain or, when the name already exists, overwrites its
// owner, status, mode and expiry. A nil expiry keeps the stored one.
func (r *Repository) Upsert(ctx context.Context, d *domain.Domain) error {
	query := `
        INSERT INTO domains (user_id, name, tld, status, expires_at, auto_renew, registrar_mode)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (name, tld) DO UPDATE SET
            user_id = EXCLUDED.user_id,
            status = EXCLUDED.status,
            expires_at = COALESCE(EXCLUDED.expires_at, domains.expires_at),
            auto_renew = EXCLUDED.auto_renew,
            registrar_mode = EXCLUDED.registrar_mode,
            updated_at = NOW()
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, d.UserID, d.Name, d.TLD, d.Status, d.ExpiresAt, d.AutoRenew, d.Mode).Scan(&d.ID)
	if err != nil {
		zap.L().Error("can't upsert domain", zap.Error(err), zap.String("domain", d.Name))
		return err
	}
	return nil
}

func (r *Repository) UpdateExpiration(ctx context.Context, id int, expiresAt time.Time) error {
	query := `
        UPDATE domains SET expires_at = $2, status = 'active', updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, expiresAt); err != nil {
		zap.L().Error("can't update domain expiration", zap.Error(err), zap.Int("domain_id", id))
		return err
	}
	return nil
}

// TransferOwnership reassigns the domain only while fromUserID still owns it
// and clears the previous owner's auto-renew payment method.
func (r *Repository) TransferOwnership(ctx context.Context, id, fromUserID, toUserID int) (bool, error) {
	query := `
        UPDATE domains SET user_id = $3, auto_renew_payment_method = '', updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, fromUserID, toUserID)
	if err != nil {
		zap.L().Error("can't transfer domain ownership", zap.Error(err), zap.Int("domain_id", id))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
