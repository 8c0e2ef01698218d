package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/graph"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/predictionapi"
)

func (s *Server) Health(c *gin.Context) {
	upstream := false
	if s.Upstream != nil {
		upstream = s.Upstream.CheckHealth(c.Request.Context())
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "prediction_service": upstream})
}

func (s *Server) State(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Snapshot())
}

// Diseases returns the held listing, loading the first page until one load
// has succeeded. The load is not tied to the request so a dropped client
// cannot leave a spurious error behind.
func (s *Server) Diseases(c *gin.Context) {
	st := s.Store.Snapshot()
	if st.NeedsInitialLoad() {
		if err := s.Store.LoadDiseases(s.ctx); err != nil && !errors.Is(err, core.ErrStale) {
			s.Logger.Warn("disease load failed", zap.Error(err))
		}
		st = s.Store.Snapshot()
	}
	c.JSON(http.StatusOK, gin.H{
		"diseases":      s.Store.VisibleDiseases(),
		"total":         st.TotalDiseases,
		"page":          st.Page,
		"query":         st.Query,
		"has_more":      st.HasMoreDiseases(),
		"disease_error": st.DiseaseError,
	})
}

type SearchRequest struct {
	Query string `json:"query"`
}

// SearchDiseases schedules a debounced search; the outcome shows up in the
// state.
func (s *Server) SearchDiseases(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	s.search.Trigger(req.Query)
	c.JSON(http.StatusAccepted, gin.H{"status": "scheduled", "query": req.Query})
}

func (s *Server) LoadMoreDiseases(c *gin.Context) {
	if err := s.Store.LoadMoreDiseases(c.Request.Context()); err != nil && !errors.Is(err, core.ErrStale) {
		s.Logger.Warn("load more failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, s.Store.Snapshot())
}

type SelectDiseaseRequest struct {
	DiseaseID string `json:"disease_id"`
}

// SelectDisease starts the prediction flow in the background; progress is
// visible through the state endpoints. An empty id clears the selection.
func (s *Server) SelectDisease(c *gin.Context) {
	var req SelectDiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.DiseaseID == "" {
		_ = s.Store.SelectDisease(c.Request.Context(), nil)
		c.JSON(http.StatusOK, s.Store.Snapshot())
		return
	}

	disease, ok := s.lookupDisease(req.DiseaseID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown disease"})
		return
	}

	started := s.background(func(ctx context.Context) {
		err := s.Store.SelectDisease(ctx, &disease)
		if err != nil && !errors.Is(err, core.ErrStale) {
			s.Logger.Warn("select disease failed", zap.String("disease_id", disease.ID), zap.Error(err))
		}
	})
	if !started {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server is shutting down"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "fetching", "disease_id": disease.ID})
}

func (s *Server) lookupDisease(id string) (model.Disease, bool) {
	for _, d := range s.Store.VisibleDiseases() {
		if d.ID == id {
			return d, true
		}
	}
	return s.Store.Catalog.Disease(id)
}

type SelectDrugRequest struct {
	DrugID string `json:"drug_id"`
}

func (s *Server) SelectDrug(c *gin.Context) {
	var req SelectDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := s.Store.SelectDrug(req.DrugID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Store.Snapshot())
}

func (s *Server) Graph(c *gin.Context) {
	g, diag := s.Store.Graph()
	c.JSON(http.StatusOK, gin.H{
		"graph":       g,
		"diagnostics": diag,
		"stats":       graph.Stats(g),
	})
}

func (s *Server) Explanation(c *gin.Context) {
	st := s.Store.Snapshot()
	if st.SelectedDisease == nil || st.SelectedDrug == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Select a disease and a drug first"})
		return
	}
	c.JSON(http.StatusOK, s.Explainer.Explain(c.Request.Context(), *st.SelectedDisease, *st.SelectedDrug))
}

// Molecule returns the structure of ?drug_id, or of the selected drug,
// centered on its centroid together with the fit scale.
func (s *Server) Molecule(c *gin.Context) {
	if s.Upstream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Prediction service not configured"})
		return
	}
	drugID := c.Query("drug_id")
	if drugID == "" {
		if d := s.Store.Snapshot().SelectedDrug; d != nil {
			drugID = d.ID
		}
	}
	if drugID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No drug selected"})
		return
	}

	m, err := s.Upstream.FetchMolecule(c.Request.Context(), drugID)
	if err != nil {
		s.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"molecule": m.Centered(),
		"scale":    m.Scale(s.opts.MoleculeViewport),
	})
}

func (s *Server) DrugDiseases(c *gin.Context) {
	if s.Upstream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Prediction service not configured"})
		return
	}
	dd, err := s.Upstream.FetchDrugDiseases(c.Request.Context(), c.Param("id"), s.opts.TopK)
	if err != nil {
		s.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dd)
}

func (s *Server) upstreamError(c *gin.Context, err error) {
	s.Logger.Warn("upstream request failed", zap.String("path", c.FullPath()), zap.Error(err))
	var fe *predictionapi.FetchError
	switch {
	case errors.Is(err, predictionapi.ErrUpstream):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
	}
}

// StateStream pushes a snapshot on every store change as server-sent events.
func (s *Server) StateStream(c *gin.Context) {
	sub, unsubscribe := s.Store.Subscribe()
	defer unsubscribe()

	c.SSEvent("state", s.Store.Snapshot())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-s.ctx.Done():
			return false
		case st, ok := <-sub:
			if !ok {
				return false
			}
			c.SSEvent("state", st)
			return true
		}
	})
}
