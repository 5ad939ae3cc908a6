package ledgerrepo

import (
	"context"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"go.uber.org/zap"
)

// Repository is the append-only registrar balance ledger. Rows are never
// updated or deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, tx *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
	query := `
		INSERT INTO balance_transactions (type, amount, fee, net_amount, balance_before, balance_after,
			domain_name, order_id, auto_refill, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, tx.Type, tx.Amount, tx.Fee, tx.NetAmount, tx.BalanceBefore, tx.BalanceAfter,
		tx.DomainName, tx.OrderID, tx.AutoRefill, tx.Note).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't append balance transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.BalanceTransaction, error) {
	query := `
        SELECT id, type, amount, fee, net_amount, balance_before, balance_after, domain_name, order_id,
            auto_refill, note, created_at
        FROM balance_transactions
        ORDER BY created_at DESC, id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch balance transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.BalanceTransaction
	for rows.Next() {
		var tx domain.BalanceTransaction
		err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Fee, &tx.NetAmount, &tx.BalanceBefore, &tx.BalanceAfter,
			&tx.DomainName, &tx.OrderID, &tx.AutoRefill, &tx.Note, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan balance transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
