// Package job provides background job processing using Asynq.
//
// Tasks are enqueued into Redis by the API handlers (producer side)
// and processed by an asynq server running in the same process
// (consumer side). A cron scheduler periodically enqueues the low
// stock scan.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/wicaksn/gostore/internal/config"
	"github.com/wicaksn/gostore/internal/lib/email"
)

// JobService holds the Asynq client (enqueue), server (worker
// execution) and the cron scheduler for recurring tasks.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server    *asynq.Server
	scheduler *cron.Cron
	logger    *zerolog.Logger
	cfg       *config.Config

	// Handler dependencies, set by InitHandlers before Start.
	email    *email.Client
	lowStock LowStockLister
}

// NewJobService creates a JobService wired to the Redis instance from
// cfg. Queue weights give order emails priority over housekeeping.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
	})

	return &JobService{
		Client:    asynq.NewClient(redisOpt),
		server:    server,
		scheduler: cron.New(),
		logger:    logger,
		cfg:       cfg,
	}
}

// InitHandlers supplies the dependencies task handlers need: the email
// client and the low stock query. Must be called before Start.
func (j *JobService) InitHandlers(emailClient *email.Client, lowStock LowStockLister) {
	j.email = emailClient
	j.lowStock = lowStock
}

// Start registers task handlers, starts the worker server, and
// schedules the recurring low stock scan. asynq's Start returns once
// workers are running; it does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskOrderConfirmation, j.handleOrderConfirmationTask)
	mux.HandleFunc(TaskPaymentReceipt, j.handlePaymentReceiptTask)
	mux.HandleFunc(TaskLowStockScan, j.handleLowStockScanTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	spec := j.cfg.Store.LowStockCron
	if _, err := j.scheduler.AddFunc(spec, j.enqueueLowStockScan); err != nil {
		return err
	}
	j.scheduler.Start()

	j.logger.Info().
		Str("schedule", spec).
		Msg("Scheduled low stock scan")

	return nil
}

// Stop gracefully stops the scheduler and the job server, then closes
// the client's Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.scheduler.Stop()
	j.server.Shutdown()
	j.Client.Close()
}
