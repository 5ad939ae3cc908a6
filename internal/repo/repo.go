package repo

import (
	"github.com/GlebRadaev/domainstore/internal/pg"
	domainrepo "github.com/GlebRadaev/domainstore/internal/repo/domain-repo"
	ledgerrepo "github.com/GlebRadaev/domainstore/internal/repo/ledger-repo"
	orderrepo "github.com/GlebRadaev/domainstore/internal/repo/order-repo"
	pushrepo "github.com/GlebRadaev/domainstore/internal/repo/push-repo"
	userrepo "github.com/GlebRadaev/domainstore/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo   *userrepo.Repository
	OrderRepo  *orderrepo.Repository
	DomainRepo *domainrepo.Repository
	LedgerRepo *ledgerrepo.Repository
	PushRepo   *pushrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:   userrepo.New(conn),
		OrderRepo:  orderrepo.New(conn, txManager),
		DomainRepo: domainrepo.New(conn),
		LedgerRepo: ledgerrepo.New(conn),
		PushRepo:   pushrepo.New(conn),
	}
}
