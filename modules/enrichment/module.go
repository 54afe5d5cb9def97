package enrichment

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/database"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/queue"
	"meetbrief-api/core/storage"
	"meetbrief-api/core/upstream"
	apikeyrepo "meetbrief-api/modules/apikey/repository"
	apikeyservice "meetbrief-api/modules/apikey/service"
	"meetbrief-api/modules/enrichment/controller"
	"meetbrief-api/modules/enrichment/repository"
	"meetbrief-api/modules/enrichment/router"
	"meetbrief-api/modules/enrichment/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, q *queue.Queue, store storage.ObjectStore) {
	cfg := config.Get()

	repo := repository.NewEnrichmentRepository(&db)
	apikeys := apikeyservice.NewAPIKeyService(apikeyrepo.NewAPIKeyRepository(&db))
	svc := service.NewEnrichmentService(repo, apikeys, upstream.New(cfg.BridgeAPI.BaseURL), store, q.Client)
	ctrl := controller.NewEnrichmentController(svc)
	mw := middleware.NewMiddleware(c)

	q.HandleFunc(queue.TypeEnrichmentPoll, svc.PollJobs)
	router.NewEnrichmentRouter(ctrl).Setup(e, mw)
}
