package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/config"
	"github.com/goprotex/Disaster-Response/internal/media/compress"
	"github.com/goprotex/Disaster-Response/internal/media/pipeline"
	"github.com/goprotex/Disaster-Response/internal/middleware"
	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
	"github.com/goprotex/Disaster-Response/internal/service"
	"github.com/goprotex/Disaster-Response/internal/storage"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	auth     *service.AuthService
	requests *service.RequestService
	offers   *service.OfferService
	maps     *service.MapService
	users    *repository.UserRepository
	db       *pgxpool.Pool
	cache    *redis.Client
	store    *storage.ObjectStore
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	compressor := compress.New(compress.Options{
		MaxSizeMB: cfg.Intake.MaxPhotoSizeMB,
		MaxEdgePx: cfg.Intake.MaxEdgePx,
	}, log)
	processor := pipeline.NewProcessor(compressor, log)
	publisher := service.NewStreamPublisher(cache)

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		auth:     service.NewAuthService(userRepo, cfg, log),
		requests: service.NewRequestService(requestRepo, store, processor, publisher, log),
		offers:   service.NewOfferService(offerRepo, log),
		maps:     service.NewMapService(requestRepo, offerRepo, cache, cfg.Map.SnapshotTTL, cfg.Map.SnapshotLimit, log),
		users:    userRepo,
		db:       db,
		cache:    cache,
		store:    store,
	}
}

// Maps exposes the map service for the background scheduler.
func (h HandlerSet) Maps() *service.MapService {
	return h.maps
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)

		me := v1.Group("/auth")
		me.Use(middleware.Auth(h.cfg, h.users))
		me.GET("/me", h.Me)
	}

	v1.GET("/requests", h.ListRequests)
	v1.GET("/offers", h.ListOffers)
	v1.GET("/map", h.MapSnapshot)

	authed := v1.Group("")
	authed.Use(middleware.Auth(h.cfg, h.users))
	authed.POST("/requests", h.CreateRequest)
	authed.PATCH("/requests/:id/claim", h.ClaimRequest)
	authed.POST("/offers", h.CreateOffer)

	admin := v1.Group("/admin")
	admin.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleOrgAdmin, models.UserRoleAdmin),
	)
	admin.GET("/requests", h.AdminListRequests)
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("current_user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
