package appcontext

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api"
	m "github.com/RoyceAzure/lab/santoral/internal/api/middleware"
	"github.com/RoyceAzure/lab/santoral/internal/api/router"
	"github.com/RoyceAzure/lab/santoral/internal/config"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/cache"
	"github.com/RoyceAzure/lab/santoral/internal/infra/producer"
	"github.com/RoyceAzure/lab/santoral/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/santoral/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	catalogCachePrefix = "santoral"
	eventBufferSize    = 1024
)

type ApplicationContext struct {
	Cf          *config.Config
	Logger      *zerolog.Logger
	RedisClient *redis.Client
	Cache       cache.Cache
	Limiter     ratelimit.Limiter
	Publisher   producer.EventPublisher
	Registry    *service.Registry
	Server      *api.Server
	Router      http.Handler

	asyncPublisher *producer.AsyncEventPublisher
}

func NewApplicationContext(cf *config.Config, logger *zerolog.Logger) (*ApplicationContext, error) {
	if cf == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	app := ApplicationContext{
		Cf:     cf,
		Logger: logger,
	}
	logger.Info().
		Str("env", cf.Env).
		Str("api_base_url", cf.ApiBaseUrl).
		Str("redis_addr", cf.RedisAddr).
		Str("kafka_brokers", cf.KafkaBrokers).
		Str("rate_limit_type", cf.RateLimitType).
		Msg("loaded config")

	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	steps := []func() error{
		app.setUpRedis,
		app.setUpCache,
		app.setUpLimiter,
		app.setUpPublisher,
		app.setUpRegistry,
		app.setUpServer,
		app.setUpRouter,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Skip setup redis client, no address configured")
		return nil
	}
	log.Printf("Start setup redis client")
	app.RedisClient = cache.GetRedisClient(app.Cf.RedisAddr,
		cache.WithPassword(app.Cf.RedisPassword),
		cache.WithDB(app.Cf.RedisDB),
	)
	if err := app.RedisClient.Ping(context.Background()).Err(); err != nil {
		// 不阻擋啟動, 快取與分散式限流會自行降級
		app.Logger.Warn().Err(err).Str("redis_addr", app.Cf.RedisAddr).Msg("redis ping failed")
	}
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpCache() error {
	log.Printf("Start setup catalog cache")
	if app.RedisClient == nil {
		app.Cache = cache.NoopCache{}
	} else {
		app.Cache = cache.NewRedisCache(app.RedisClient, catalogCachePrefix)
	}
	log.Printf("Finish setup catalog cache")
	return nil
}

func (app *ApplicationContext) setUpLimiter() error {
	log.Printf("Start setup rate limiter")
	var client ratelimit.RedisClient
	if app.RedisClient != nil {
		client = app.RedisClient
	}
	limiter, err := ratelimit.New(ratelimit.Type(app.Cf.RateLimitType), ratelimit.Config{
		Capacity: app.Cf.RateLimitCapacity,
		Rate:     app.Cf.RateLimitRate,
		Window:   app.Cf.RateLimitWindow,
	}, client)
	if err != nil {
		return fmt.Errorf("setup rate limiter: %w", err)
	}
	app.Limiter = limiter
	log.Printf("Finish setup rate limiter")
	return nil
}

func (app *ApplicationContext) setUpPublisher() error {
	brokers := app.Cf.Brokers()
	if len(brokers) == 0 {
		log.Printf("Skip setup kafka publisher, no brokers configured")
		app.Publisher = producer.NoopEventPublisher{}
		return nil
	}

	log.Printf("Start setup kafka publisher")
	cfg := producer.Config{
		Brokers:       brokers,
		Topic:         app.Cf.KafkaTopic,
		RequiredAcks:  1,
		RetryAttempts: 3,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("setup kafka publisher: %w", err)
	}
	p, err := producer.NewKafkaProducer(producer.NewKafkaWriter(cfg, app.Logger), cfg)
	if err != nil {
		return fmt.Errorf("setup kafka publisher: %w", err)
	}
	app.asyncPublisher = producer.NewAsyncEventPublisher(p, eventBufferSize, app.Logger)
	app.asyncPublisher.Start()
	app.Publisher = app.asyncPublisher
	log.Printf("Finish setup kafka publisher")
	return nil
}

func (app *ApplicationContext) setUpRegistry() error {
	log.Printf("Start setup storefront registry")
	baseURL, timeout, logger := app.Cf.ApiBaseUrl, app.Cf.ApiTimeout, app.Logger
	factory := func() (service.StorefrontAPI, error) {
		return backend.NewClient(baseURL,
			backend.WithTimeout(timeout),
			backend.WithLogger(logger),
		)
	}
	// 啟動前先確認 base url 可用
	if _, err := factory(); err != nil {
		return fmt.Errorf("setup storefront registry: %w", err)
	}

	app.Registry = service.NewRegistry(factory, service.RegistryOptions{
		Publisher: app.Publisher,
		Cache:     app.Cache,
		CacheTTL:  app.Cf.CatalogCacheTTL,
		IdleTTL:   app.Cf.SessionIdleTTL,
		Logger:    app.Logger,
	})
	app.Registry.Start()
	log.Printf("Finish setup storefront registry")
	return nil
}

func (app *ApplicationContext) setUpServer() error {
	log.Printf("Start setup api server")
	app.Server = api.NewServer(m.StorefrontFrom)
	log.Printf("Finish setup api server")
	return nil
}

func (app *ApplicationContext) setUpRouter() error {
	log.Printf("Start setup router")
	app.Router = router.SetupRouter(app.Server, router.Options{
		Registry: app.Registry,
		Limiter:  app.Limiter,
		Cookie: m.SessionCookieOptions{
			Secure: app.Cf.SessionCookieSecure,
			MaxAge: int(app.Cf.SessionIdleTTL.Seconds()),
		},
		Logger: app.Logger,
	})
	log.Printf("Finish setup router")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		if app.Registry != nil {
			log.Printf("Stopping storefront registry...")
			app.Registry.Stop()
		}

		if app.asyncPublisher != nil {
			log.Printf("Flushing event publisher...")
			if err := app.asyncPublisher.Stop(ctx); err != nil {
				//有錯誤不結束流程
				log.Printf("event publisher shutdown error: %v", err)
			}
		}

		if app.Limiter != nil {
			app.Limiter.Stop()
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			if err := cache.CloseRedisClient(app.Cf.RedisAddr); err != nil {
				log.Printf("redis close error: %v", err)
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
