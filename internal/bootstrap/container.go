package bootstrap

import (
	"context"
	"log"

	"imagine-algorithm/internal/config"
	"imagine-algorithm/internal/controller"
	"imagine-algorithm/internal/handler"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/internal/service"
	"imagine-algorithm/internal/view"
	"imagine-algorithm/internal/websocket"

	pktNats "imagine-algorithm/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const feedTopic = "analyzer.feed"

type Container struct {
	// Controllers
	AnalyzerController      controller.IAnalyzerController
	BoardController         controller.IBoardController
	ConsiderationController controller.IConsiderationController
	WorkshopController      controller.IWorkshopController
	PageController          controller.IPageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	shutdown []func()
}

// NewContainer wires every service. Integrations whose URL is empty in cfg
// are left out: no NATS means analytics are dropped, no Redis means the
// feed hub only serves this instance.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	feedLogger := logger.NewIsolatedLogger(cfg.App.FeedLogFilePath)
	m := metrics.NewMetrics()

	c := &Container{Metrics: m, Logger: sysLogger}

	// 2. Event Bus
	// Publishing blocks until the consumer acks so pushes for one session
	// reach the hub in tick order.
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermill.NewStdLogger(false, false),
	)
	c.onShutdown(func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var analyticsPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			analyticsPublisher = natsPub
			c.onShutdown(natsPub.Close)
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Feed stays local", err)
			_ = rdb.Close()
			rdb = nil
		} else {
			c.onShutdown(func() { _ = rdb.Close() })
		}
	}

	// WebSocket Hub
	hubCtx, stopHub := context.WithCancel(ctx)
	wsHub := websocket.NewHub(rdb, feedLogger)
	go wsHub.Run(hubCtx)
	c.onShutdown(stopHub)

	// 4. Services
	analyticsService := service.NewAnalyticsService(analyticsPublisher, m, sysLogger)
	sessionService := service.NewSessionService(*cfg, service.DefaultSessionFactory(cfg.Analyzer), m, sysLogger)
	publisherService := service.NewPublisherService(feedTopic, pubSub)
	analyzerService := service.NewAnalyzerService(
		sessionService,
		publisherService,
		analyticsService,
		m,
		sysLogger,
		cfg.Analyzer.TickInterval,
	)
	boardService := service.NewBoardService(sessionService, analyticsService, m)
	questionnaireService := service.NewQuestionnaireService(sessionService, analyticsService, m)
	workshopService := service.NewWorkshopService()

	// Registered last so tick loops stop before the bus closes.
	c.onShutdown(sessionService.Shutdown)
	c.onShutdown(analyzerService.Shutdown)

	c.ConsumerService = service.NewConsumerService(pubSub, feedTopic, wsHub, analyticsService, m, feedLogger)

	renderer, err := view.NewRenderer()
	if err != nil {
		c.Shutdown()
		return nil, err
	}

	// 5. Controllers
	c.AnalyzerController = controller.NewAnalyzerController(analyzerService)
	c.BoardController = controller.NewBoardController(boardService)
	c.ConsiderationController = controller.NewConsiderationController(questionnaireService)
	c.WorkshopController = controller.NewWorkshopController(workshopService)
	c.PageController = controller.NewPageController(renderer, workshopService, analyzerService, boardService, questionnaireService)
	c.FeedHandler = handler.NewFeedHandler(analyzerService, wsHub, feedLogger)
	c.WebSocketHub = wsHub

	return c, nil
}

func (c *Container) onShutdown(fn func()) {
	c.shutdown = append(c.shutdown, fn)
}

// Shutdown releases everything NewContainer started, newest first.
func (c *Container) Shutdown() {
	for i := len(c.shutdown) - 1; i >= 0; i-- {
		c.shutdown[i]()
	}
	c.shutdown = nil
	_ = c.Logger.Sync()
}
