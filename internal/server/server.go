package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	"github.com/lodgewise/lodgewise/internal/config"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
	"github.com/lodgewise/lodgewise/internal/ratelimit"
	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

type Params struct {
	fx.In

	Engine      *gin.Engine
	Log         *zap.Logger
	DB          *gorm.DB
	Registry    *prometheus.Registry
	QuoteSvc    quotedomain.Service
	RoomTypeSvc roomtypedomain.Service
	RuleSvc     pricingruledomain.Service
	AddonSvc    addondomain.Service
	Limiter     *ratelimit.Limiter `optional:"true"`
}

type Server struct {
	engine      *gin.Engine
	log         *zap.Logger
	db          *gorm.DB
	registry    *prometheus.Registry
	quoteSvc    quotedomain.Service
	roomTypeSvc roomtypedomain.Service
	ruleSvc     pricingruledomain.Service
	addonSvc    addondomain.Service
	limiter     *ratelimit.Limiter
}

func NewServer(p Params) *Server {
	return &Server{
		engine:      p.Engine,
		log:         p.Log.Named("server"),
		db:          p.DB,
		registry:    p.Registry,
		quoteSvc:    p.QuoteSvc,
		roomTypeSvc: p.RoomTypeSvc,
		ruleSvc:     p.RuleSvc,
		addonSvc:    p.AddonSvc,
		limiter:     p.Limiter,
	}
}

func NewEngine(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(AccessLog(log))
	return engine
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.Health)
	s.engine.GET("/readyz", s.Readiness)
	s.engine.GET("/metrics", s.Metrics)

	api := s.engine.Group("/api")
	api.POST("/quotes", s.limiter.Middleware(), s.CreateQuote)

	api.POST("/room-types", s.CreateRoomType)
	api.GET("/room-types", s.ListRoomTypes)
	api.GET("/room-types/:id", s.GetRoomType)
	api.PATCH("/room-types/:id", s.UpdateRoomType)

	api.POST("/pricing-rules", s.CreatePricingRule)
	api.GET("/pricing-rules", s.ListPricingRules)
	api.GET("/pricing-rules/:id", s.GetPricingRule)
	api.PATCH("/pricing-rules/:id/status", s.UpdatePricingRuleStatus)
	api.DELETE("/pricing-rules/:id", s.DeletePricingRule)

	api.POST("/addon-services", s.CreateAddon)
	api.GET("/addon-services", s.ListAddons)
	api.GET("/addon-services/:id", s.GetAddon)
	api.PATCH("/addon-services/:id", s.UpdateAddon)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.Server.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
