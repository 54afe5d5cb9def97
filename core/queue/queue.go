package queue

import (
	"context"

	"meetbrief-api/core/config"
	"meetbrief-api/core/logger"

	"github.com/hibiken/asynq"
)

// Task type names. Handlers are registered by the owning module.
const (
	TypeEnrichmentPoll = "enrichment:poll"
)

type Queue struct {
	Client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

func New(cfg *config.Config) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	return &Queue{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

func (q *Queue) HandleFunc(pattern string, handler func(context.Context, *asynq.Task) error) {
	q.mux.HandleFunc(pattern, handler)
}

// Start runs the asynq worker in the background.
func (q *Queue) Start() error {
	logger.Info("Queue:Start")
	return q.server.Start(q.mux)
}

func (q *Queue) Shutdown() {
	q.server.Shutdown()
	if err := q.Client.Close(); err != nil {
		logger.Warn("Queue:Shutdown:ClientClose:Error", "error", err)
	}
}
