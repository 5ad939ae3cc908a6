package pushrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const pushColumns = `id, domain_id, from_user_id, to_user_id, to_email, note, status, admin_initiated,
        expires_at, responded_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPush(row pgx.Row) (*domain.DomainPushRequest, error) {
	var p domain.DomainPushRequest
	err := row.Scan(&p.ID, &p.DomainID, &p.FromUserID, &p.ToUserID, &p.ToEmail, &p.Note, &p.Status,
		&p.AdminInitiated, &p.ExpiresAt, &p.RespondedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.DomainPushRequest, error) {
	p, err := scanPush(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find push request", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Create inserts a pending request. A second pending request for the same
// domain violates domain_push_requests_one_pending.
func (r *Repository) Create(ctx context.Context, p *domain.DomainPushRequest) error {
	query := `
        INSERT INTO domain_push_requests (id, domain_id, from_user_id, to_user_id, to_email, note, status,
            admin_initiated, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query, p.ID, p.DomainID, p.FromUserID, p.ToUserID, p.ToEmail, p.Note, p.Status,
		p.AdminInitiated, p.ExpiresAt, p.CreatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save push request", zap.Error(err), zap.Int("domain_id", p.DomainID))
		}
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.DomainPushRequest, error) {
	query := `
        SELECT ` + pushColumns + `
        FROM domain_push_requests
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// Lock reads the request with a row lock. It must run inside a transaction.
func (r *Repository) Lock(ctx context.Context, id uuid.UUID) (*domain.DomainPushRequest, error) {
	query := `
        SELECT ` + pushColumns + `
        FROM domain_push_requests
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindPendingByDomain(ctx context.Context, domainID int) (*domain.DomainPushRequest, error) {
	query := `
        SELECT ` + pushColumns + `
        FROM domain_push_requests
        WHERE domain_id = $1 AND status = 'pending'
    `
	return r.findOne(ctx, query, domainID)
}

// Resolve moves a pending request to a final status. It reports false when the
// request was no longer pending.
func (r *Repository) Resolve(ctx context.Context, id uuid.UUID, status domain.PushStatus, at time.Time) (bool, error) {
	query := `
        UPDATE domain_push_requests SET status = $2, responded_at = $3
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, status, at)
	if err != nil {
		zap.L().Error("can't update push request", zap.Error(err), zap.String("request_id", id.String()))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListForAccount returns requests the account sent or received, newest first.
func (r *Repository) ListForAccount(ctx context.Context, userID int) ([]domain.DomainPushRequest, error) {
	query := `
        SELECT ` + pushColumns + `
        FROM domain_push_requests
        WHERE from_user_id = $1 OR to_user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get push requests", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.DomainPushRequest
	for rows.Next() {
		p, err := scanPush(rows)
		if err != nil {
			zap.L().Error("can't scan push request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *p)
	}
	return requests, rows.Err()
}

// ExpireOverdue marks every pending request past its deadline as expired.
func (r *Repository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE domain_push_requests SET status = 'expired', responded_at = $1
        WHERE status = 'pending' AND expires_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire push requests", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
