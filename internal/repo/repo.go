package repo

import (
	"github.com/obralink/obralink/internal/pg"
	delayrepo "github.com/obralink/obralink/internal/repo/delay-repo"
	escrowtxrepo "github.com/obralink/obralink/internal/repo/escrowtx-repo"
	jobrepo "github.com/obralink/obralink/internal/repo/job-repo"
	userrepo "github.com/obralink/obralink/internal/repo/user-repo"
	walletrepo "github.com/obralink/obralink/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	WalletRepo   *walletrepo.Repository
	JobRepo      *jobrepo.Repository
	EscrowTxRepo *escrowtxrepo.Repository
	DelayRepo    *delayrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	jobRepo := jobrepo.New(conn, txManager)
	escrowTxRepo := escrowtxrepo.New(conn)
	delayRepo := delayrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		WalletRepo:   walletRepo,
		JobRepo:      jobRepo,
		EscrowTxRepo: escrowTxRepo,
		DelayRepo:    delayRepo,
	}
}
