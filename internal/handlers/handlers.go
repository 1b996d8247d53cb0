package handlers

import (
	"net/http"

	_ "github.com/obralink/obralink/docs"
	"github.com/obralink/obralink/internal/currency"
	authhandlers "github.com/obralink/obralink/internal/handlers/auth"
	delayhandlers "github.com/obralink/obralink/internal/handlers/delays"
	jobhandlers "github.com/obralink/obralink/internal/handlers/jobs"
	reporthandlers "github.com/obralink/obralink/internal/handlers/reports"
	wallethandlers "github.com/obralink/obralink/internal/handlers/wallet"
	"github.com/obralink/obralink/internal/service"
	"github.com/obralink/obralink/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	CreateJob(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	SubmitBid(w http.ResponseWriter, r *http.Request)
	ListBids(w http.ResponseWriter, r *http.Request)
	AcceptBid(w http.ResponseWriter, r *http.Request)
	StartWork(w http.ResponseWriter, r *http.Request)
	CompleteJob(w http.ResponseWriter, r *http.Request)
	RefundJob(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetEscrowSummary(w http.ResponseWriter, r *http.Request)
	GetRate(w http.ResponseWriter, r *http.Request)
}

type DelayHandler interface {
	ReportDelay(w http.ResponseWriter, r *http.Request)
	ListDelays(w http.ResponseWriter, r *http.Request)
	AcceptDelay(w http.ResponseWriter, r *http.Request)
	RejectDelay(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetTransactionsCSV(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	JobHandler    JobHandler
	WalletHandler WalletHandler
	DelayHandler  DelayHandler
	ReportHandler ReportHandler
}

func New(s *service.Services, rates *currency.Service) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		JobHandler:    jobhandlers.New(s.JobService, s.EscrowService, s.WalletService),
		WalletHandler: wallethandlers.New(s.WalletService, rates),
		DelayHandler:  delayhandlers.New(s.DelayService, s.JobService),
		ReportHandler: reporthandlers.New(s.EscrowService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/profile", h.AuthHandler.GetProfile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", h.JobHandler.CreateJob)
				r.Get("/", h.JobHandler.ListJobs)
				r.Route("/{jobID}", func(r chi.Router) {
					r.Get("/", h.JobHandler.GetJob)
					r.Post("/bids", h.JobHandler.SubmitBid)
					r.Get("/bids", h.JobHandler.ListBids)
					r.Post("/accept", h.JobHandler.AcceptBid)
					r.Post("/start", h.JobHandler.StartWork)
					r.Post("/complete", h.JobHandler.CompleteJob)
					r.Post("/refund", h.JobHandler.RefundJob)
					r.Get("/transactions", h.JobHandler.GetTransactions)
				})
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Get("/escrow", h.WalletHandler.GetEscrowSummary)
				r.Get("/rate", h.WalletHandler.GetRate)
			})

			r.Route("/delays", func(r chi.Router) {
				r.Post("/", h.DelayHandler.ReportDelay)
				r.Get("/", h.DelayHandler.ListDelays)
				r.Post("/{registryID}/accept", h.DelayHandler.AcceptDelay)
				r.Post("/{registryID}/reject", h.DelayHandler.RejectDelay)
			})

			r.Get("/reports/transactions", h.ReportHandler.GetTransactionsCSV)
		})
	})

	return r
}
