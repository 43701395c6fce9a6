package worker

import (
	"fmt"

	worker_handler "github.com/Xenn-00/schicht-meister/internal/worker/handlers"
	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(
		worker_task.TaskSendPayReportEmail,
		h.PayReportEmailHandler(),
	)
	mux.HandleFunc(
		worker_task.TaskCloseDanglingEinsaetze,
		h.CloseDanglingHandler(),
	)
	mux.HandleFunc(worker_task.TaskWeeklyPayReportEmails, h.WeeklyPayReportHandler())
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "5 0 * * *",
			task:  asynq.NewTask(worker_task.TaskCloseDanglingEinsaetze, nil),
			queue: "low",
			desc:  "close dangling einsaetze and schichten",
		},
		{
			spec:  "0 6 * * 1",
			task:  asynq.NewTask(worker_task.TaskWeeklyPayReportEmails, nil),
			queue: "low",
			desc:  "send weekly pay report emails",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
