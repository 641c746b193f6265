package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/checkout"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/controller"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/cache"
	circuitbreaker "github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/database/postgres"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/search/elasticsearch"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/tracing"
	appmiddleware "github.com/alimikegami/pos-microservices/marketplace-service/internal/middleware"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/utils"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/validation"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
)

const (
	bodyLimit       = "64M"
	staleUploadAge  = time.Hour
	shutdownTimeout = 10 * time.Second
)

type App struct {
	Config  *config.Config
	MongoDB *mongo.Database
	DB      *sqlx.DB
	Server  *echo.Echo

	metrics *echo.Echo
	cancel  context.CancelFunc
	closers []func(ctx context.Context) error
}

// Start wires every dependency and serves HTTP until StopServer is called.
// MongoDB and DB are connected from Config when not set by the caller.
func (app *App) Start() error {
	setupLogger(app.Config)

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	e, err := app.buildServer(ctx)
	if err != nil {
		return err
	}
	app.Server = e

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	err = e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if app.cancel != nil {
		app.cancel()
	}

	var errList []error
	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.metrics != nil {
		errList = append(errList, app.metrics.Shutdown(ctx))
	}

	for i := len(app.closers) - 1; i >= 0; i-- {
		errList = append(errList, app.closers[i](ctx))
	}

	return errors.Join(errList...)
}

func (app *App) onStop(fn func(ctx context.Context) error) {
	app.closers = append(app.closers, fn)
}

func setupLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(conf.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if conf.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func (app *App) buildServer(ctx context.Context) (*echo.Echo, error) {
	conf := app.Config

	traceProvider, err := tracing.InitTracing(conf.TracingConfig.CollectorHost)
	if err != nil {
		return nil, err
	}
	app.onStop(traceProvider.Shutdown)

	tracer := traceProvider.Tracer(tracing.ServiceName)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.CreateValidator()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	// unprefixed so metrics aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))

	if err := app.connectStores(ctx); err != nil {
		return nil, err
	}

	catalogCache := app.createCache(ctx)
	publisher, reader, err := app.createBroker(ctx)
	if err != nil {
		return nil, err
	}

	var searchRepo repository.ProductSearchRepository
	if conf.ElasticsearchConfig.DBHost != "" {
		client, err := elasticsearch.CreateElasticsearchClient(conf)
		if err != nil {
			log.Warn().Err(err).Msg("product search disabled")
		} else {
			searchRepo = repository.CreateElasticSearchRepository(client)
		}
	}

	images, err := app.createImageService()
	if err != nil {
		return nil, err
	}

	gateway, err := paymentgateway.CreateGateway(conf)
	if err != nil {
		return nil, err
	}
	gateway = paymentgateway.WithCircuitBreaker(gateway, circuitbreaker.CreateCircuitBreaker[paymentgateway.Session]("payment-gateway", paymentgateway.IsClientError))

	productRepo := repository.CreateProductRepository(app.MongoDB)
	serviceRepo := repository.CreateServiceRepository(app.MongoDB)
	cartRepo := repository.CreateCartRepository(app.MongoDB)
	reviewRepo := repository.CreateReviewRepository(app.MongoDB)
	userRepo := repository.CreateUserRepository(app.MongoDB)
	orderRepo := repository.CreateOrderRepository(app.DB)

	if reader != nil {
		consumer := service.CreateEventConsumer(reader, userRepo, searchRepo)
		go consumer.ConsumeEvent(ctx)
	}

	smtp := conf.SMTPConfig
	sendMail := func(m *gomail.Message) error {
		return utils.SendEmail(m, utils.SMTPSettings{Host: smtp.Host, Port: smtp.Port, Sender: smtp.Sender, Password: smtp.Password})
	}

	g := e.Group("/api")

	controller.CreateProductController(g, service.CreateProductService(productRepo, searchRepo, catalogCache, images, publisher))
	controller.CreateServiceListingController(g, service.CreateServiceListingService(serviceRepo, catalogCache, images, publisher))
	controller.CreateCartController(g, service.CreateCartService(cartRepo))
	controller.CreateReviewController(g, service.CreateReviewService(reviewRepo))
	controller.CreateOrderController(g, service.CreateOrderService(orderRepo, publisher, smtp, sendMail))
	controller.CreateCheckoutController(g, service.CreateCheckoutService(
		checkout.Builder{ShippingChargeMinor: conf.PaymentConfig.ShippingChargeMinor},
		gateway,
		conf.PaymentConfig.Currency,
	))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	return e, nil
}

func (app *App) connectStores(ctx context.Context) (err error) {
	conf := app.Config

	if app.MongoDB == nil {
		uri := fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort)
		app.MongoDB, err = mongodb.ConnectToMongoDB(ctx, uri, conf.MongoDBConfig.DBName)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %w", err)
		}
		app.onStop(app.MongoDB.Client().Disconnect)
	}

	if err = mongodb.CreateIndexes(ctx, app.MongoDB); err != nil {
		return fmt.Errorf("creating MongoDB indexes: %w", err)
	}

	if app.DB == nil {
		pg := conf.PostgreSQLConfig
		app.DB, err = postgres.GetDBInstance(pg.DBUsername, pg.DBPassword, pg.DBHost, pg.DBPort, pg.DBName)
		if err != nil {
			return fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		app.onStop(func(context.Context) error { return postgres.CloseDBInstance() })
	}

	if err = postgres.RunMigrations(app.DB); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}

func (app *App) createCache(ctx context.Context) cache.CatalogCache {
	rc := app.Config.RedisConfig
	if rc.Addr == "" {
		return cache.NoopCache{}
	}

	client := redis.NewClient(&redis.Options{Addr: rc.Addr, Password: rc.Password})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog cache disabled")
		client.Close()
		return cache.NoopCache{}
	}
	app.onStop(func(context.Context) error { return client.Close() })

	return cache.CreateRedisCache(client, time.Duration(rc.TTLSeconds)*time.Second)
}

// createBroker returns a nil reader when no broker is configured.
func (app *App) createBroker(ctx context.Context) (service.EventPublisher, service.MessageReader, error) {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		return kafka.NoopPublisher{}, nil, nil
	}

	conn, err := kafka.CreateKafkaProducer(ctx, app.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to Kafka: %w", err)
	}
	app.onStop(func(context.Context) error { return conn.Close() })

	reader := kafka.CreateKafkaReader(app.Config)
	app.onStop(func(context.Context) error { return reader.Close() })

	return kafka.CreatePublisher(conn), reader, nil
}

func (app *App) createImageService() (*media.ImageService, error) {
	mc := app.Config.MediaConfig

	uploader, err := media.CreateCloudinaryUploader(mc.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("creating media uploader: %w", err)
	}

	if err := os.MkdirAll(mc.UploadDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	sweeper, err := media.StartSweeper(mc.UploadDir, time.Duration(mc.SweepIntervalSeconds)*time.Second, staleUploadAge)
	if err != nil {
		return nil, fmt.Errorf("starting upload sweeper: %w", err)
	}
	app.onStop(func(context.Context) error { return sweeper.Shutdown() })

	return media.CreateImageService(uploader, mc.UploadDir), nil
}
