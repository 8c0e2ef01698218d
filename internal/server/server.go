package server

import (
	"context"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/explain"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/debounce"
)

// Upstream is the part of the prediction service the handlers call directly.
type Upstream interface {
	CheckHealth(ctx context.Context) bool
	FetchMolecule(ctx context.Context, drugID string) (model.Molecule, error)
	FetchDrugDiseases(ctx context.Context, drugID string, topK int) (model.DrugDiseases, error)
}

type Options struct {
	AllowedOrigins []string
	SearchDebounce time.Duration
	TopK           int
	// MoleculeViewport is the radius the molecule is scaled to fit.
	MoleculeViewport float64
}

type Server struct {
	Store     *core.Store
	Explainer *explain.Service
	Upstream  Upstream
	Logger    *zap.Logger

	opts   Options
	search *debounce.Debouncer[string]

	// background selections and searches outlive the request that started them
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	bgMu   sync.Mutex
	closed bool
}

// NewServer wires the handlers. upstream may be nil in offline mode; the
// molecule and reverse-lookup endpoints then answer 503.
func NewServer(store *core.Store, explainer *explain.Service, upstream Upstream, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TopK <= 0 {
		opts.TopK = core.DefaultTopK
	}
	if opts.MoleculeViewport <= 0 {
		opts.MoleculeViewport = 3
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		Store:     store,
		Explainer: explainer,
		Upstream:  upstream,
		Logger:    logger,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.search = debounce.New(opts.SearchDebounce, func(query string) {
		s.background(func(ctx context.Context) {
			if err := s.Store.SearchDiseases(ctx, query); err != nil {
				s.Logger.Debug("search result dropped", zap.String("query", query), zap.Error(err))
			}
		})
	})
	return s
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	corsCfg := cors.Config{
		AllowOrigins: s.opts.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.GET("/state", s.State)
	api.GET("/state/stream", s.StateStream)
	api.GET("/diseases", s.Diseases)
	api.POST("/diseases/search", s.SearchDiseases)
	api.POST("/diseases/more", s.LoadMoreDiseases)
	api.POST("/select/disease", s.SelectDisease)
	api.POST("/select/drug", s.SelectDrug)
	api.GET("/graph", s.Graph)
	api.GET("/explanation", s.Explanation)
	api.GET("/molecule", s.Molecule)
	api.GET("/drugs/:id/diseases", s.DrugDiseases)

	return r
}

// Close stops pending searches and waits for in-flight background work.
// Work submitted afterwards is dropped.
func (s *Server) Close() {
	s.search.Stop()
	s.bgMu.Lock()
	s.closed = true
	s.bgMu.Unlock()
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until started background work has finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

// background runs fn on the server context. It reports false once Close has
// been called.
func (s *Server) background(fn func(ctx context.Context)) bool {
	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
	return true
}

const requestIDHeader = "X-Request-ID"

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
