package worker_handler

import (
	"context"
	"time"

	report_case "github.com/Xenn-00/schicht-meister/internal/use-cases/report-case"
	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) PayReportEmailHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Pay report email hit.")
		var p worker_task.SendPayReportEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		worker, appErr := wh.wr.GetWorkerByID(ctx, p.WorkerID)
		if appErr != nil {
			log.Error().Err(appErr.Err).Str("worker_id", p.WorkerID).Msg("Worker handler: Error occured when trying to call repo -> GetWorkerByID.")
			return appErr
		}
		if !worker.IsActive {
			return nil // idempotent
		}

		var since *time.Time
		if p.Since != "" {
			parsed, err := time.ParseInLocation(time.DateOnly, p.Since, time.Local)
			if err != nil {
				log.Error().Err(err).Str("since", p.Since).Msg("Worker handler: Invalid since date in payload, skip task.")
				return nil // kein Retry, das Payload wird nicht besser
			}
			since = &parsed
		}

		einsaetze, appErr := wh.er.GetAllByOwner(ctx, p.WorkerID)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error occured when trying to call repo -> GetAllByOwner (einsaetze).")
			return appErr
		}
		schichten, appErr := wh.sr.GetAllByOwner(ctx, p.WorkerID)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error occured when trying to call repo -> GetAllByOwner (schichten).")
			return appErr
		}

		report := report_case.BuildPayReport(p.WorkerID, einsaetze, schichten, since, time.Now(), wh.minimumWage)

		log.Info().Msg("Worker handler: Preparing to hit SendPayReportEmail service.")
		return wh.mailer.SendPayReportEmail(worker.Email, worker.Name, report, p.Since)
	}
}

// WeeklyPayReportHandler fächert den Wochenbericht auf: pro aktivem Worker
// wird ein einzelner E-Mail-Task enqueued, der Versand selbst läuft dann in
// der email-Queue.
func (wh *WorkerHandler) WeeklyPayReportHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Weekly pay report fan-out hit.")
		workers, appErr := wh.wr.ListActiveWorkers(ctx)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Error occured when trying to call repo -> ListActiveWorkers.")
			return appErr
		}

		since := time.Now().AddDate(0, 0, -7).Format(time.DateOnly)
		for _, worker := range workers {
			payload, err := json.Marshal(worker_task.SendPayReportEmailPayload{
				WorkerID: worker.ID,
				Since:    since,
			})
			if err != nil {
				log.Error().Err(err).Str("worker_id", worker.ID).Msg("Worker handler: Failed to marshal pay report payload.")
				continue
			}

			task := asynq.NewTask(worker_task.TaskSendPayReportEmail, payload)
			if _, err := wh.client.Enqueue(task, asynq.Queue("email"), asynq.MaxRetry(5)); err != nil {
				log.Error().Err(err).Str("worker_id", worker.ID).Msg("Worker handler: Failed to enqueue pay report email.")
				continue
			}
		}

		log.Info().Int("workers", len(workers)).Msg("Worker handler: Weekly pay report fan-out done.")
		return nil
	}
}
