// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/config"
	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/http/handlers"
	"github.com/pickme-app/pick-backend/internal/http/middleware"
	"github.com/pickme-app/pick-backend/internal/repo"
	"github.com/pickme-app/pick-backend/internal/services"
)

// questionRepoShim adapts the repository free functions to the
// services.QuestionRepo interface expected by the QuestionService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type questionRepoShim struct{}

// Create proxies repo.CreateQuestion.
func (questionRepoShim) Create(ctx context.Context, db *gorm.DB, content string, qtype domain.QuestionType, category domain.QuestionCategory, emojiImageID string) (*domain.Question, error) {
	return repo.CreateQuestion(ctx, db, content, qtype, category, emojiImageID)
}

// Get proxies repo.GetQuestion.
func (questionRepoShim) Get(ctx context.Context, db *gorm.DB, id string) (*domain.Question, error) {
	return repo.GetQuestion(ctx, db, id)
}

// catalogShim adapts the question sampling functions to the catalog
// interfaces consumed by the set builder and the sheet fan-out.
type catalogShim struct{}

// FindRandom proxies repo.FindRandomQuestions.
func (catalogShim) FindRandom(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string, limit int) ([]domain.Question, error) {
	return repo.FindRandomQuestions(ctx, db, qtype, excludedIDs, limit)
}

// CountByType proxies repo.CountQuestionsByType.
func (catalogShim) CountByType(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string) (int64, error) {
	return repo.CountQuestionsByType(ctx, db, qtype, excludedIDs)
}

// FindByIDsAndType proxies repo.FindQuestionsByIDsAndType.
func (catalogShim) FindByIDsAndType(ctx context.Context, db *gorm.DB, ids []string, qtype domain.QuestionType) ([]domain.Question, error) {
	return repo.FindQuestionsByIDsAndType(ctx, db, ids, qtype)
}

// setRepoShim adapts the question-set repository functions to
// services.QuestionSetRepo.
type setRepoShim struct{}

func (setRepoShim) Save(ctx context.Context, db *gorm.DB, set *domain.QuestionSet) error {
	return repo.SaveQuestionSet(ctx, db, set)
}

func (setRepoShim) Get(ctx context.Context, db *gorm.DB, id string) (*domain.QuestionSet, error) {
	return repo.GetQuestionSet(ctx, db, id)
}

func (setRepoShim) Active(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error) {
	return repo.GetActiveQuestionSet(ctx, db, now)
}

func (setRepoShim) Next(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error) {
	return repo.GetNextQuestionSet(ctx, db, now)
}

func (setRepoShim) Latest(ctx context.Context, db *gorm.DB) (*domain.QuestionSet, error) {
	return repo.GetLatestQuestionSet(ctx, db)
}

// sheetRepoShim adapts the question-sheet repository functions to
// services.QuestionSheetRepo.
type sheetRepoShim struct{}

func (sheetRepoShim) List(ctx context.Context, db *gorm.DB, setID, resolverID string) ([]domain.QuestionSheet, error) {
	return repo.ListQuestionSheets(ctx, db, setID, resolverID)
}

func (sheetRepoShim) SaveAll(ctx context.Context, db *gorm.DB, sheets []domain.QuestionSheet) ([]domain.QuestionSheet, error) {
	return repo.SaveQuestionSheets(ctx, db, sheets)
}

// relationRepoShim adapts the relation repository functions to
// services.RelationRepo.
type relationRepoShim struct{}

func (relationRepoShim) Create(ctx context.Context, db *gorm.DB, fromID, toID string, kind domain.RelationType) (*domain.MemberRelation, error) {
	return repo.CreateRelation(ctx, db, fromID, toID, kind)
}

func (relationRepoShim) List(ctx context.Context, db *gorm.DB, fromID string) ([]domain.MemberRelation, error) {
	return repo.ListRelations(ctx, db, fromID)
}

func (relationRepoShim) ListByKind(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType) ([]domain.MemberRelation, error) {
	return repo.ListRelationsByKind(ctx, db, fromID, kind)
}

func (relationRepoShim) Get(ctx context.Context, db *gorm.DB, fromID, toID string) (*domain.MemberRelation, error) {
	return repo.GetRelation(ctx, db, fromID, toID)
}

func (relationRepoShim) IsFriend(ctx context.Context, db *gorm.DB, fromID, toID string) (bool, error) {
	return repo.IsFriend(ctx, db, fromID, toID)
}

func (relationRepoShim) Save(ctx context.Context, db *gorm.DB, rel *domain.MemberRelation) error {
	return repo.SaveRelation(ctx, db, rel)
}

func (relationRepoShim) RandomTargets(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType, limit int) ([]string, error) {
	return repo.FindRandomTargets(ctx, db, fromID, kind, limit)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress JSON responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (behind a flag; off in production by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	questionSvc := &services.QuestionService{DB: db, Repo: questionRepoShim{}}
	setSvc := &services.QuestionSetService{
		DB:      db,
		Sets:    setRepoShim{},
		Catalog: catalogShim{},
		Cfg:     cfg.QuestionSet,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	relationSvc := &services.RelationService{DB: db, Repo: relationRepoShim{}}
	sheetSvc := &services.QuestionSheetService{
		DB:             db,
		Sheets:         sheetRepoShim{},
		Catalog:        catalogShim{},
		Sets:           setSvc,
		Candidates:     relationSvc,
		CandidateLimit: cfg.CandidateLimit,
	}
	h := handlers.New(questionSvc, setSvc, sheetSvc, relationSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Question catalog
		api.POST("/questions", h.CreateQuestion)
		api.GET("/questions/:id", h.GetQuestion)

		// Question sets. The literal routes must be registered before the
		// :id route so Gin resolves "active"/"latest"/"next" as words, not ids.
		api.POST("/question-sets", h.CreateQuestionSet)
		api.POST("/question-sets/next", h.BuildNextQuestionSet)
		api.GET("/question-sets/active", h.ActiveQuestionSet)
		api.GET("/question-sets/next", h.NextQuestionSet)
		api.GET("/question-sets/latest", h.LatestQuestionSet)
		api.GET("/question-sets/:id", h.GetQuestionSet)

		// Sheets (per caller)
		api.POST("/question-sets/:id/sheets", h.GenerateSheets)
		api.GET("/question-sets/:id/sheets", h.ListSheets)

		// Relations (per caller)
		api.GET("/relations", h.ListRelations)
		api.GET("/relations/friends", h.ListFriends)
		api.GET("/relations/accompany", h.ListAccompany)
		api.POST("/relations", h.CreateRelation)
		api.PUT("/relations/:toId/friend", h.PromoteRelation)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
