package app

import (
	"github.com/streamsync/core/internal/config"
	http_auth "github.com/streamsync/core/internal/delivery/http/auth"
	http_init "github.com/streamsync/core/internal/delivery/http/init"
	http_match "github.com/streamsync/core/internal/delivery/http/match"
	http_auth_middleware "github.com/streamsync/core/internal/delivery/http/middleware/auth"
	http_room "github.com/streamsync/core/internal/delivery/http/room"
	http_stack "github.com/streamsync/core/internal/delivery/http/stack"
	http_swipe "github.com/streamsync/core/internal/delivery/http/swipe"
	ws_room "github.com/streamsync/core/internal/delivery/ws/room"
	infra_pg_init "github.com/streamsync/core/internal/infra/postgres/init"
	infra_postgres_match "github.com/streamsync/core/internal/infra/postgres/match"
	infra_postgres_room "github.com/streamsync/core/internal/infra/postgres/room"
	infra_postgres_swipe "github.com/streamsync/core/internal/infra/postgres/swipe"
	infra_postgres_user "github.com/streamsync/core/internal/infra/postgres/user"
	infra_redis_init "github.com/streamsync/core/internal/infra/redis/init"
	infra_stack_cache "github.com/streamsync/core/internal/infra/redis/stack_cache"
	infra_tmdb "github.com/streamsync/core/internal/infra/tmdb"
	usecase_auth "github.com/streamsync/core/internal/usecase/auth"
	usecase_match "github.com/streamsync/core/internal/usecase/match"
	usecase_room "github.com/streamsync/core/internal/usecase/room"
	usecase_stack "github.com/streamsync/core/internal/usecase/stack"
	usecase_swipe "github.com/streamsync/core/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.EstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	userDB := infra_postgres_user.New(pgConn)
	roomDB := infra_postgres_room.New(pgConn)
	swipeDB := infra_postgres_swipe.New(pgConn)
	matchDB := infra_postgres_match.New(pgConn)

	stackCache := infra_stack_cache.New(redisConn, "")
	catalog := infra_tmdb.New(cfg.Catalog)

	hub := ws_room.NewHub()
	go hub.Run()

	authUC := usecase_auth.New(userDB, cfg.Auth.Secret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	roomUC := usecase_room.New(roomDB, cfg.Matching.Region, cfg.Matching.DefaultProviders)
	stackUC := usecase_stack.New(roomUC, stackCache, catalog, swipeDB, cfg.Matching.StackCacheTTL)
	swipeUC := usecase_swipe.New(swipeDB, matchDB, catalog, hub)
	matchUC := usecase_match.New(matchDB)

	authRequired := http_auth_middleware.New(authUC)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authUC))
	controllerPool.Add(http_room.New(roomUC, hub, authRequired))
	controllerPool.Add(http_stack.New(stackUC, authRequired))
	controllerPool.Add(http_swipe.New(swipeUC, authRequired))
	controllerPool.Add(http_match.New(matchUC, authRequired))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
