// Package app assembles the store, the prediction client, the catalog and
// the explanation service from configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/config"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/explain"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/driver"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/llm"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/predictionapi"
)

type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Client    *predictionapi.Client // nil in offline mode
	Store     *core.Store
	Explainer *explain.Service
	Logger    *zap.Logger

	closers []func(context.Context) error
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger, Catalog: catalog.Default()}

	if cfg.Catalog.Source == "memgraph" {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Memgraph: %w", err)
		}
		a.closers = append(a.closers, d.Close)

		cat, err := catalog.LoadFromGraph(ctx, d, catalog.Default())
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		a.Catalog = cat
		logger.Info("catalog loaded from memgraph",
			zap.Int("diseases", len(cat.Diseases())),
			zap.Int("targets", len(cat.Targets())),
			zap.Int("pathways", len(cat.Pathways())))
	}

	var (
		predictor core.Predictor
		diseases  core.DiseaseSource
	)
	switch cfg.Prediction.Mode {
	case "offline":
		offline := catalog.NewOffline(a.Catalog)
		predictor, diseases = offline, offline
		logger.Info("prediction service disabled, answering from catalog")
	default:
		timeout, err := cfg.Prediction.TimeoutDuration()
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.Client = predictionapi.NewClient(cfg.Prediction.BaseURL,
			predictionapi.WithTimeout(timeout),
			predictionapi.WithLogger(logger.Named("predictionapi")))
		predictor, err = core.RemotePredictor(a.Client, cfg.Prediction.Model)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		diseases = a.Client
	}

	gen, err := llm.NewGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	if g, ok := gen.(*llm.GeminiClient); ok {
		a.closers = append(a.closers, func(context.Context) error { return g.Close() })
	}
	a.Explainer = explain.NewService(gen, logger.Named("explain"))

	a.Store = core.New(predictor, diseases,
		core.WithLogger(logger.Named("store")),
		core.WithTopK(cfg.Prediction.TopK),
		core.WithPageSize(cfg.UI.PageSize),
		core.WithCatalog(a.Catalog))

	return a, nil
}

func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.Logger.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}
