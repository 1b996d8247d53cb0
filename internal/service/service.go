package service

import (
	"github.com/obralink/obralink/internal/pg"
	"github.com/obralink/obralink/internal/repo"
	"github.com/obralink/obralink/internal/service/authservice"
	"github.com/obralink/obralink/internal/service/delayservice"
	"github.com/obralink/obralink/internal/service/escrowservice"
	"github.com/obralink/obralink/internal/service/jobservice"
	"github.com/obralink/obralink/internal/service/walletservice"
	pkgauth "github.com/obralink/obralink/pkg/auth"
)

type Services struct {
	AuthService   *authservice.Service
	WalletService *walletservice.Service
	JobService    *jobservice.Service
	EscrowService *escrowservice.Service
	DelayService  *delayservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.EscrowTxRepo)
	jobService := jobservice.New(repo.JobRepo)
	escrowService := escrowservice.New(walletService, repo.EscrowTxRepo, repo.JobRepo, txManager)
	delayService := delayservice.New(repo.DelayRepo, repo.UserRepo, jobService, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)

	return &Services{
		AuthService:   authService,
		WalletService: walletService,
		JobService:    jobService,
		EscrowService: escrowService,
		DelayService:  delayService,
	}
}
