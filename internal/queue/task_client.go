package queue

import (
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
)

// TaskQueueClient ist die Enqueue-Seite der Hintergrundjobs; Services hängen
// nur an diesem Interface, nicht am asynq-Client.
type TaskQueueClient interface {
	EnqueueSendPayReportEmail(payload *worker_task.SendPayReportEmailPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueSendPayReportEmail(payload *worker_task.SendPayReportEmailPayload) error {
	log.Info().Str("worker_id", payload.WorkerID).Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskSendPayReportEmail, p, asynq.Queue("email"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}
