package predictionapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestFetchPredictions_ConvertsScores(t *testing.T) {
	var gotPath, gotTopK string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTopK = r.URL.Query().Get("top_k")
		w.Write([]byte(`{
			"disease": {"id": "alzheimers", "name": "Alzheimer's Disease"},
			"predictions": [{
				"drug_id": "DB00843", "drug_name": "Donepezil", "score": 0.873,
				"confidenceTier": "high", "gene_overlap": 4, "association_score": 0.5,
				"mechanismSummary": "Inhibits AChE", "diseaseRelevance": "relevant",
				"knownLimitations": ["symptomatic only"],
				"targets": ["ache"], "pathways": ["cholinergic"]
			}]
		}`))
	})

	drugs, err := c.FetchPredictions(context.Background(), "alzheimers", 10)
	require.NoError(t, err)
	assert.Equal(t, "/predict/alzheimers", gotPath)
	assert.Equal(t, "10", gotTopK)

	require.Len(t, drugs, 1)
	d := drugs[0]
	assert.Equal(t, "DB00843", d.ID)
	assert.Equal(t, "Donepezil", d.Name)
	assert.Equal(t, 87, d.ConfidenceScore)
	assert.Equal(t, model.TierHigh, d.ConfidenceTier)
	assert.Equal(t, "Inhibits AChE", d.MechanismSummary)
	assert.Equal(t, []string{"ache"}, d.Targets)
	assert.Equal(t, []string{"cholinergic"}, d.Pathways)
	assert.Equal(t, []string{"symptomatic only"}, d.KnownLimitations)
	assert.Nil(t, d.Extended)
}

func TestFetchPredictions_TierPassedThrough(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[{"drug_id":"x","drug_name":"X","score":0.12,"confidenceTier":"high"}]}`))
	})

	drugs, err := c.FetchPredictions(context.Background(), "d", 5)
	require.NoError(t, err)
	require.Len(t, drugs, 1)
	assert.Equal(t, 12, drugs[0].ConfidenceScore)
	assert.Equal(t, model.TierHigh, drugs[0].ConfidenceTier)
	assert.NotNil(t, drugs[0].Targets)
	assert.NotNil(t, drugs[0].Pathways)
}

func TestFetchPredictions_EmptyIsNotAnError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	})

	drugs, err := c.FetchPredictions(context.Background(), "rare", 5)
	require.NoError(t, err)
	assert.Empty(t, drugs)
}

func TestFetchPredictions_ServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchPredictions(context.Background(), "alzheimers", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "alzheimers", fe.DiseaseID)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}

func TestFetchPredictions_MalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions": "nope"`))
	})

	_, err := c.FetchPredictions(context.Background(), "alzheimers", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrNetwork))
}

func TestFetchPredictions_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).FetchPredictions(context.Background(), "alzheimers", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestFetchPredictions_ContextCancel(t *testing.T) {
	block := make(chan struct{})
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.FetchPredictions(ctx, "alzheimers", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestFetchRepurposing_Extended(t *testing.T) {
	var gotPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"predictions":[{
			"drug_id":"DB01","drug_name":"Metformin","score":0.5,"confidenceTier":"medium",
			"genetic_score":0.7,"animal_model_score":0.2,"known_drug_score":0.9,"drug_max_phase":4
		}]}`))
	})

	drugs, err := c.FetchRepurposing(context.Background(), "alzheimers", 3)
	require.NoError(t, err)
	assert.Equal(t, "/repurpose/alzheimers", gotPath)
	require.Len(t, drugs, 1)
	assert.Equal(t, 50, drugs[0].ConfidenceScore)
	require.NotNil(t, drugs[0].Extended)
	assert.Equal(t, 0.7, drugs[0].Extended.GeneticScore)
	assert.Equal(t, 0.2, drugs[0].Extended.AnimalModelScore)
	assert.Equal(t, 0.9, drugs[0].Extended.KnownDrugScore)
	assert.Equal(t, 4, drugs[0].Extended.DrugMaxPhase)
}

func TestFetchDiseases(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diseases", r.URL.Path)
		w.Write([]byte(`[{"id":"a","name":"A","category":"Neuro","description":"d"}]`))
	})

	ds, err := c.FetchDiseases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Disease{{ID: "a", Name: "A", Category: "Neuro", Description: "d"}}, ds)
}

func TestFetchPagedDiseases_Query(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantSearch bool
	}{
		{"empty query omits search", "", false},
		{"query sent", "alz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/diseases", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, tt.wantSearch, q.Has("search"))
				if tt.wantSearch {
					assert.Equal(t, tt.query, q.Get("search"))
				}
				assert.Equal(t, "2", q.Get("page"))
				assert.Equal(t, "50", q.Get("limit"))
				w.Write([]byte(`{"diseases":[{"id":"x","name":"X"}],"total":51,"page":2,"limit":50,"total_pages":2}`))
			})

			page, err := c.FetchPagedDiseases(context.Background(), tt.query, 2, 50)
			require.NoError(t, err)
			assert.Equal(t, 51, page.Total)
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, 2, page.TotalPages)
			assert.Len(t, page.Diseases, 1)
		})
	}
}

func TestFetchPagedDiseases_ErrorKeepsQuery(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchPagedDiseases(context.Background(), "park", 1, 50)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "park", fe.Query)
	assert.Contains(t, err.Error(), `query="park"`)
}

func TestFetchDrugDiseases(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drug-diseases/DB00843", r.URL.Path)
		w.Write([]byte(`{"drug":{"id":"DB00843","name":"Donepezil"},
			"predictions":[{"disease_id":"alzheimers","disease_name":"AD","score":0.905,"confidenceTier":"high"}],
			"total_diseases":1}`))
	})

	dd, err := c.FetchDrugDiseases(context.Background(), "DB00843", 10)
	require.NoError(t, err)
	assert.Equal(t, "Donepezil", dd.DrugName)
	require.Len(t, dd.Predictions, 1)
	assert.Equal(t, 91, dd.Predictions[0].ConfidenceScore)
	assert.Equal(t, 1, dd.TotalDiseases)
}

func TestFetchMolecule(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"drug_id":"DB1","drug_name":"Aspirin",
			"atoms":[{"id":0,"symbol":"C","x":0,"y":0,"z":0},{"id":1,"symbol":"O","x":1,"y":0,"z":0}],
			"bonds":[{"start":0,"end":1,"type":2}],"atom_count":2,"bond_count":1}`))
	})

	m, err := c.FetchMolecule(context.Background(), "DB1")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", m.DrugName)
	assert.Len(t, m.Atoms, 2)
	require.Len(t, m.Bonds, 1)
	assert.Equal(t, 2, m.Bonds[0].Order)
}

func TestFetchMolecule_ErrorBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"No structure available"}`))
	})

	_, err := c.FetchMolecule(context.Background(), "DB1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "No structure available")
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"healthy", 200, `{"status":"healthy","model_loaded":true,"data_loaded":true}`, true},
		{"model not loaded", 200, `{"status":"healthy","model_loaded":false}`, false},
		{"degraded", 200, `{"status":"degraded","model_loaded":true}`, false},
		{"server error", 500, `{"status":"healthy","model_loaded":true}`, false},
		{"garbage", 200, `not json`, false},
		{"string flag", 200, `{"status":"healthy","model_loaded":"true"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			assert.Equal(t, tt.want, c.CheckHealth(context.Background()))
		})
	}
}

func TestCheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	assert.False(t, NewClient(url).CheckHealth(context.Background()))
}

func TestHealth_Parsed(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","model_loaded":true,"data_loaded":false}`))
	})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Health{Status: "healthy", ModelLoaded: true}, h)
}

func TestScoreToPercent(t *testing.T) {
	assert.Equal(t, 87, ScoreToPercent(0.873))
	assert.Equal(t, 88, ScoreToPercent(0.875))
	assert.Equal(t, 0, ScoreToPercent(0))
	assert.Equal(t, 100, ScoreToPercent(1))
}
