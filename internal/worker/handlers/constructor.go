package worker_handler

import (
	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/config"
	"github.com/Xenn-00/schicht-meister/internal/mail"
	einsatz_repo "github.com/Xenn-00/schicht-meister/internal/repo/einsatz-repo"
	schicht_repo "github.com/Xenn-00/schicht-meister/internal/repo/schicht-repo"
	worker_repo "github.com/Xenn-00/schicht-meister/internal/repo/worker-repo"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type WorkerHandler struct {
	db          *pgxpool.Pool
	client      *asynq.Client
	er          einsatz_repo.EinsatzRepoContract
	sr          schicht_repo.SchichtRepoContract
	wr          worker_repo.WorkerRepoContract
	txManager   tx.TxManager
	mailer      mail.Mailer
	minimumWage decimal.Decimal
}

func NewWorkerHandler(db *pgxpool.Pool, client *asynq.Client, mailer mail.Mailer, cfg *config.AppConfig) *WorkerHandler {
	return &WorkerHandler{
		db:          db,
		client:      client,
		er:          einsatz_repo.NewEinsatzRepo(db),
		sr:          schicht_repo.NewSchichtRepo(db),
		wr:          worker_repo.NewWorkerRepo(db),
		txManager:   tx.NewPgxTxManager(db),
		mailer:      mailer,
		minimumWage: cfg.MinimumWage(),
	}
}
