package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/noamani/authkit/modules/passwordreset"
	"github.com/noamani/authkit/pkg/clientip"
	"github.com/noamani/authkit/pkg/config"
	"github.com/noamani/authkit/pkg/email"
	"github.com/noamani/authkit/pkg/httpserver"
	"github.com/noamani/authkit/pkg/logger"
	mongoconn "github.com/noamani/authkit/pkg/mongo"
	"github.com/noamani/authkit/pkg/ratelimit"
	redisconn "github.com/noamani/authkit/pkg/redis"
	"github.com/noamani/authkit/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		logCfg   logger.Config
		mongoCfg mongoconn.Config
		redisCfg redisconn.Config
		emailCfg email.Config
		httpCfg  httpserver.Config
		resetCfg passwordreset.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&resetCfg)

	log := logger.New(
		logger.WithConfig(logCfg, "authkit"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientIPExtractor,
		),
	)
	logger.SetAsDefault(log)

	client, err := mongoconn.Connect(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	storage := passwordreset.NewMongoStorage(client.Database(mongoCfg.Database))
	if err := storage.EnsureIndexes(ctx); err != nil {
		return err
	}

	sender := newEmailSender(log, emailCfg)

	healthchecks := []func(context.Context) error{mongoconn.Healthcheck(client)}
	store, healthchecks := newRateLimitStore(ctx, log, redisCfg, healthchecks)
	limiter, err := ratelimit.NewFixedWindow(store, resetCfg.RateLimit, resetCfg.RateWindow)
	if err != nil {
		return err
	}

	svc, err := passwordreset.NewService(resetCfg, storage, sender, passwordreset.WithLogger(log))
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Get("/healthz", httpserver.HealthCheckHandler(log, healthchecks...))
	r.Mount("/auth", svc.Router(ratelimit.Middleware(limiter, ratelimit.ClientIP())))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

// newEmailSender picks Postmark when tokens are configured and falls back
// to the filesystem DevSender for local development.
func newEmailSender(log *slog.Logger, cfg email.Config) email.EmailSender {
	if cfg.PostmarkServerToken != "" {
		sender, err := email.NewPostmarkClient(cfg)
		if err == nil {
			return sender
		}
		log.Warn("postmark config incomplete, using dev email sender", logger.Error(err))
	} else {
		log.Warn("postmark tokens not set, using dev email sender", "dir", cfg.DevOutputDir)
	}
	return email.NewDevSender(cfg.DevOutputDir)
}

// newRateLimitStore prefers Redis so the issuance window holds across
// instances, falling back to process-local state when Redis is not
// reachable at startup.
func newRateLimitStore(ctx context.Context, log *slog.Logger, cfg redisconn.Config, checks []func(context.Context) error) (ratelimit.Store, []func(context.Context) error) {
	client, err := redisconn.Connect(ctx, cfg)
	if err != nil {
		log.Warn("redis unavailable, using in-memory rate limit store", logger.Error(err))
		return ratelimit.NewMemoryStore(), checks
	}
	return ratelimit.NewRedisStore(client, "authkit:ratelimit"), append(checks, redisconn.Healthcheck(client))
}

func clientIPExtractor(ctx context.Context) (slog.Attr, bool) {
	if ip := clientip.FromContext(ctx); ip != "" {
		return slog.String("client_ip", ip), true
	}
	return slog.Attr{}, false
}
