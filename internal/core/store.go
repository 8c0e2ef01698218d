// Package core holds the application state store: the selected disease and
// drug, the prediction flow, and the paged disease listing.
package core

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/graph"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

const (
	DefaultTopK     = 10
	DefaultPageSize = 50
)

type Store struct {
	Predictor Predictor
	Diseases  DiseaseSource
	Catalog   *catalog.Catalog
	Builder   *graph.Builder

	logger   *zap.Logger
	topK     int
	pageSize int

	mu        sync.Mutex
	state     State
	lastErr   error
	selectGen uint64
	listGen   uint64
	subs      map[uint64]chan State
	nextSub   uint64
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func WithTopK(k int) Option {
	return func(s *Store) {
		if k > 0 {
			s.topK = k
		}
	}
}

func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithCatalog sets the reference catalog used for graph building and the
// offline disease fallback.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Store) {
		if c != nil {
			s.Catalog = c
		}
	}
}

func New(predictor Predictor, diseases DiseaseSource, opts ...Option) *Store {
	s := &Store{
		Predictor: predictor,
		Diseases:  diseases,
		Catalog:   catalog.Default(),
		logger:    zap.NewNop(),
		topK:      DefaultTopK,
		pageSize:  DefaultPageSize,
		state:     initialState(),
		subs:      make(map[uint64]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Builder = graph.NewBuilder(s.Catalog)
	return s
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the cause of the most recent failed prediction flow:
// the fetch error, or ErrEmptyResult. It is nil after a success.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SelectDisease starts the prediction flow for d. A nil disease clears the
// selection without fetching. Only the latest selection may write results;
// an older one returns ErrStale. Fetch failures are recorded in the state and
// are not returned.
func (s *Store) SelectDisease(ctx context.Context, d *model.Disease) error {
	s.mu.Lock()
	s.selectGen++
	gen := s.selectGen

	if d == nil {
		s.state.SelectedDisease = nil
		s.state.SelectedDrug = nil
		s.state.Predictions = []model.Drug{}
		s.state.Phase = model.PhaseAnalyzing
		s.state.Status = model.StatusIdle
		s.state.Loading = false
		s.state.Error = ""
		s.lastErr = nil
		s.publishLocked()
		s.mu.Unlock()
		return nil
	}

	disease := *d
	s.state.SelectedDisease = &disease
	s.state.SelectedDrug = nil
	s.state.Predictions = []model.Drug{}
	s.state.Phase = model.PhaseAnalyzing
	s.state.Status = model.StatusFetching
	s.state.Loading = true
	s.state.Error = ""
	s.lastErr = nil
	s.publishLocked()
	s.mu.Unlock()

	drugs, err := s.Predictor.Predict(ctx, disease.ID, s.topK)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.selectGen {
		s.logger.Debug("discarding stale predictions", zap.String("disease_id", disease.ID))
		return ErrStale
	}

	s.state.Loading = false
	if err != nil {
		s.logger.Warn("prediction fetch failed", zap.String("disease_id", disease.ID), zap.Error(err))
		s.state.Error = MsgPredictionsFailed
		s.state.Phase = model.PhaseAnalyzing
		s.state.Status = model.StatusFailed
		s.lastErr = err
		s.publishLocked()
		return nil
	}
	if len(drugs) == 0 {
		s.state.Error = MsgNoCandidates
		s.state.Status = model.StatusFailed
		s.lastErr = fmt.Errorf("%w for %s", ErrEmptyResult, disease.ID)
		s.publishLocked()
		return nil
	}

	s.state.Phase = model.PhaseMatching
	s.publishLocked()

	s.state.Predictions = drugs
	top := drugs[0]
	s.state.SelectedDrug = &top
	s.state.Phase = model.PhaseScoring
	s.state.Status = model.StatusReady
	s.publishLocked()

	s.logger.Info("predictions loaded",
		zap.String("disease_id", disease.ID),
		zap.Int("count", len(drugs)),
		zap.String("top_drug", top.ID))
	return nil
}

// SelectDrug focuses one of the current predictions. An empty id clears the
// focus.
func (s *Store) SelectDrug(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.state.SelectedDrug = nil
		s.publishLocked()
		return nil
	}
	for _, d := range s.state.Predictions {
		if d.ID == id {
			drug := d
			s.state.SelectedDrug = &drug
			s.publishLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownDrug, id)
}

// LoadDiseases fetches the first page of the unfiltered listing.
func (s *Store) LoadDiseases(ctx context.Context) error {
	return s.SearchDiseases(ctx, "")
}

// SearchDiseases replaces the listing with page 1 of the query's results.
// A response overtaken by a newer search or load is discarded.
func (s *Store) SearchDiseases(ctx context.Context, query string) error {
	s.mu.Lock()
	s.listGen++
	gen := s.listGen
	s.state.Query = query
	s.state.LoadingDiseases = true
	s.state.DiseaseError = ""
	s.publishLocked()
	s.mu.Unlock()

	return s.fetchDiseases(ctx, gen, query, 1, false)
}

// LoadMoreDiseases appends the next page. It does nothing while a listing
// fetch is in flight or once everything has been loaded.
func (s *Store) LoadMoreDiseases(ctx context.Context) error {
	s.mu.Lock()
	if s.state.LoadingDiseases || !s.state.HasMoreDiseases() {
		s.mu.Unlock()
		return nil
	}
	gen := s.listGen
	query := s.state.Query
	page := s.state.Page + 1
	s.state.LoadingDiseases = true
	s.state.DiseaseError = ""
	s.publishLocked()
	s.mu.Unlock()

	return s.fetchDiseases(ctx, gen, query, page, true)
}

func (s *Store) fetchDiseases(ctx context.Context, gen uint64, query string, page int, appendPage bool) error {
	res, err := s.Diseases.FetchPagedDiseases(ctx, query, page, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.listGen {
		s.logger.Debug("discarding stale disease page", zap.String("query", query), zap.Int("page", page))
		return ErrStale
	}

	s.state.LoadingDiseases = false
	if err != nil {
		s.logger.Warn("disease fetch failed", zap.String("query", query), zap.Int("page", page), zap.Error(err))
		s.state.DiseaseError = MsgDiseasesFailed
		s.publishLocked()
		return nil
	}

	if appendPage {
		merged := make([]model.Disease, 0, len(s.state.Diseases)+len(res.Diseases))
		merged = append(merged, s.state.Diseases...)
		s.state.Diseases = append(merged, res.Diseases...)
	} else {
		s.state.Diseases = append([]model.Disease{}, res.Diseases...)
	}
	s.state.TotalDiseases = res.Total
	s.state.Page = page
	s.state.DiseasesLoaded = true
	s.publishLocked()
	return nil
}

// VisibleDiseases is the held listing. When nothing usable is held, because
// no fetch has succeeded yet or the last one failed, it falls back to the
// reference catalog filtered by the current query. A successful search that
// matched nothing yields an empty list.
func (s *Store) VisibleDiseases() []model.Disease {
	s.mu.Lock()
	held := s.state.Diseases
	authoritative := s.state.DiseasesLoaded && s.state.DiseaseError == ""
	query := s.state.Query
	s.mu.Unlock()

	if len(held) > 0 || authoritative {
		return held
	}
	return s.Catalog.SearchDiseases(query)
}

// Graph builds the drug-target-pathway graph of the selected drug.
func (s *Store) Graph() (model.GraphData, model.GraphDiagnostics) {
	s.mu.Lock()
	drug := s.state.SelectedDrug
	s.mu.Unlock()

	g, diag := s.Builder.Build(drug)
	if diag.Skipped() > 0 {
		s.logger.Debug("graph skipped unknown ids",
			zap.String("drug_id", drug.ID),
			zap.Strings("targets", diag.SkippedTargets),
			zap.Strings("pathways", diag.SkippedPathways))
	}
	return g, diag
}

// Subscribe returns a channel receiving a snapshot after every change. Slow
// readers only see the latest snapshot. The returned func unsubscribes.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.state:
			continue
		default:
		}
		// drop the unread snapshot so the newest wins
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s.state:
		default:
		}
	}
}
