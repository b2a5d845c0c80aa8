package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/client"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/config"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/controller"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/mailer"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/implementation"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/storage"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/websocket"
	pktNats "github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/nats"
)

const eventTopic = "travel_events"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	SearchController       controller.ISearchController
	CartController         controller.ICartController
	NotificationController controller.INotificationController
	PreferenceController   controller.IPreferenceController
	ContactController      controller.IContactController
	BlogController         controller.IBlogController

	// Background services (exposed for main.go to run)
	NotificationService service.INotificationService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	validate := validator.New()

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.ContactTo,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror for downstream consumers
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Visitor state
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	draftDebounce := time.Duration(cfg.Session.DraftDebounceMs) * time.Millisecond

	prefs := storage.NewRedisPreferences(rdb, sessionTTL)
	visitors := memory.NewVisitorRepository(prefs, sysLogger, sessionTTL, draftDebounce)

	// 4. Upstream travel API clients
	upstreamTimeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	authClient := client.NewAuthClient(cfg.Upstream.AuthBaseURL, upstreamTimeout)
	flightClient := client.NewFlightClient(cfg.Upstream.FlightsBaseURL, upstreamTimeout)

	// 5. WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 6. Repositories
	blogRepo := implementation.NewBlogRepository(db)
	contactRepo := implementation.NewContactRepository(db)

	// 7. Services
	publisherService := service.NewPublisherService(eventTopic, pubSub)

	authService := service.NewAuthService(visitors, authClient, publisherService, natsPub, sysLogger)
	searchService := service.NewSearchService(visitors, flightClient, validate, publisherService, upstreamTimeout, sysLogger)
	cartService := service.NewCartService(visitors, publisherService, sysLogger)
	notificationService := service.NewNotificationService(visitors, pubSub, eventTopic, wsHub, sysLogger)
	preferenceService := service.NewPreferenceService(visitors)
	contactService := service.NewContactService(contactRepo, emailService, publisherService, sysLogger)
	blogService := service.NewBlogService(blogRepo)

	// 8. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService, validate),
		SearchController:       controller.NewSearchController(searchService),
		CartController:         controller.NewCartController(cartService, validate),
		NotificationController: controller.NewNotificationController(notificationService, wsHub, validate, sysLogger),
		PreferenceController:   controller.NewPreferenceController(preferenceService, validate),
		ContactController:      controller.NewContactController(contactService, validate),
		BlogController:         controller.NewBlogController(blogService),

		NotificationService: notificationService,
		WebSocketHub:        wsHub,
	}
}
