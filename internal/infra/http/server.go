package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"credstamp/internal/config"
	"credstamp/internal/domain"
	"credstamp/internal/infra/assets"
	"credstamp/internal/infra/cachemem"
	"credstamp/internal/infra/cacheredis"
	"credstamp/internal/infra/ratelimit"
	"credstamp/internal/infra/toolkit"
	"credstamp/internal/usecase"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	verifyUC *usecase.VerifyAsset
	state    *usecase.OutcomeState
	assets   usecase.AssetFetcher

	toolkitMode string

	rateLimiter       domain.RateLimiter
	rateLimitRequests int
	rateLimitWindow   time.Duration
}

func NewServer(cfg config.Config) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, r: r}
	s.initDeps()
	s.routes()
	return s
}

// ServerDeps lets tests and embedders swap collaborators without env wiring.
type ServerDeps struct {
	Toolkit     usecase.TrustToolkit
	Cache       usecase.OutcomeCache
	Assets      usecase.AssetFetcher
	RateLimiter domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, r: r, toolkitMode: "injected"}
	s.state = usecase.NewOutcomeState()
	tk := deps.Toolkit
	if tk == nil {
		tk = toolkit.Unavailable{Err: domain.ErrToolkitUnavailable}
		s.toolkitMode = "unavailable"
	}
	s.verifyUC = &usecase.VerifyAsset{
		Toolkit:  tk,
		State:    s.state,
		Cache:    deps.Cache,
		CacheTTL: cfg.CacheTTL(),
	}
	s.assets = deps.Assets
	s.initRateLimit(deps.RateLimiter)
	s.routes()
	return s
}

func (s *Server) initDeps() {
	s.state = usecase.NewOutcomeState()

	var tk usecase.TrustToolkit
	s.toolkitMode = "unavailable"
	if remote, err := toolkit.NewRemoteAdapterFromConfig(s.cfg); err == nil {
		tk = remote
		s.toolkitMode = "remote"
	} else if local, err := toolkit.NewExecAdapterFromConfig(s.cfg); err == nil {
		tk = local
		s.toolkitMode = "exec"
	} else {
		// Bootstrap failures surface per-request as not-verifiable with the
		// cause message; the server itself still comes up.
		tk = toolkit.Unavailable{Err: err}
	}

	var cache usecase.OutcomeCache
	if s.cfg.RedisAddr != "" {
		if redisCache, err := cacheredis.New(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB); err == nil {
			cache = redisCache
		}
	}
	if cache == nil {
		cache = cachemem.New()
	}

	s.verifyUC = &usecase.VerifyAsset{
		Toolkit:  tk,
		State:    s.state,
		Cache:    cache,
		CacheTTL: s.cfg.CacheTTL(),
	}

	if fetcher, err := assets.NewStoreFromConfig(s.cfg); err == nil {
		s.assets = fetcher
	}

	s.initRateLimit(nil)
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	if override != nil {
		s.rateLimiter = override
	}
	if s.rateLimiter == nil && s.cfg.RateLimitRequests > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{
				MaxKeys: s.cfg.RateLimitMaxKeys,
			})
		}
	}
	s.rateLimitRequests = s.cfg.RateLimitRequests
	if s.cfg.RateLimitWindowSeconds > 0 {
		s.rateLimitWindow = time.Duration(s.cfg.RateLimitWindowSeconds) * time.Second
	}
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "toolkit": s.toolkitMode})
	})

	v1 := s.r.Group("/v1")
	{
		v1.POST("/verifications", s.handleSubmit)
		v1.GET("/verifications/current", s.handleCurrent)
	}

	s.r.NoRoute(func(c *gin.Context) {
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
}

func (s *Server) Run() error {
	return s.r.Run(s.cfg.HTTPAddr)
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.r
}
