package worker_handler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// CloseDanglingHandler schließt Einsätze und Schichten, die vor dem heutigen
// Tag geöffnet wurden und nie beendet worden sind. Endzeit ist Mitternacht des
// laufenden Tages, das Repo hält dabei eine Mindestdauer von einer Minute ein.
func (wh *WorkerHandler) CloseDanglingHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Close dangling einsaetze hit.")

		now := time.Now()
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

		// begin transaction
		txn, appErr := wh.txManager.Begin(ctx)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Failed to open db transaction")
			return nil
		}
		defer txn.Rollback(ctx)

		closedEinsaetze, appErr := wh.er.CloseAllOpenBefore(ctx, txn, cutoff, cutoff)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error occured when closing dangling einsaetze")
			return nil
		}

		closedSchichten, appErr := wh.sr.CloseAllOpenBefore(ctx, txn, cutoff, cutoff)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error occured when closing dangling schichten")
			return nil
		}

		if appErr := txn.Commit(ctx); appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error when initiating commit transaction")
			return nil
		}

		if closedEinsaetze > 0 || closedSchichten > 0 {
			log.Info().
				Int64("einsaetze", closedEinsaetze).
				Int64("schichten", closedSchichten).
				Msg("Worker handler: Dangling entries closed.")
		}

		return nil
	}
}
