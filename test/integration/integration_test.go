//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/config"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/explain"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/driver"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/llm"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/predictionapi"
)

func init() {
	_ = godotenv.Load("../../.env")
}

func TestCatalogSeedAndLoad(t *testing.T) {
	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MEMGRAPH_URI not set")
	}
	ctx := context.Background()

	d, err := driver.NewMemgraphDriver(ctx, uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer d.Close(ctx)

	// unique ids keep reruns from colliding with earlier data
	suffix := uuid.NewString()[:8]
	disease := model.Disease{ID: "it_disease_" + suffix, Name: "Integration Disease", Category: "Test"}
	target := model.Target{ID: "it_target_" + suffix, Name: "Integration Target", Type: model.TargetEnzyme}
	pathway := model.Pathway{ID: "it_pathway_" + suffix, Name: "Integration Pathway"}
	seed := catalog.New([]model.Disease{disease}, []model.Target{target}, []model.Pathway{pathway}, nil)

	require.NoError(t, catalog.SeedGraph(ctx, d, seed))
	require.NoError(t, catalog.SeedGraph(ctx, d, seed), "seeding twice must be idempotent")

	loaded, err := catalog.LoadFromGraph(ctx, d, catalog.Default())
	require.NoError(t, err)

	got, ok := loaded.Disease(disease.ID)
	require.True(t, ok)
	assert.Equal(t, disease.Name, got.Name)

	gotTarget, ok := loaded.Target(target.ID)
	require.True(t, ok)
	assert.Equal(t, model.TargetEnzyme, gotTarget.Type)

	_, ok = loaded.Pathway(pathway.ID)
	assert.True(t, ok)
}

func TestPredictionServiceFlow(t *testing.T) {
	baseURL := os.Getenv("PREDICTION_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: PREDICTION_BASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := predictionapi.NewClient(baseURL, predictionapi.WithLogger(zaptest.NewLogger(t)))
	require.True(t, client.CheckHealth(ctx), "prediction service not healthy")

	predictor, err := core.RemotePredictor(client, core.ModelLegacy)
	require.NoError(t, err)
	store := core.New(predictor, client, core.WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, store.LoadDiseases(ctx))
	st := store.Snapshot()
	require.Empty(t, st.DiseaseError)
	require.NotEmpty(t, st.Diseases)

	first := st.Diseases[0]
	require.NoError(t, store.SelectDisease(ctx, &first))
	st = store.Snapshot()
	if st.Status == model.StatusFailed {
		assert.Equal(t, core.MsgNoCandidates, st.Error)
		return
	}
	assert.Equal(t, model.StatusReady, st.Status)
	for _, d := range st.Predictions {
		assert.GreaterOrEqual(t, d.ConfidenceScore, 0)
		assert.LessOrEqual(t, d.ConfidenceScore, 100)
	}
}

func TestLLMExplanation(t *testing.T) {
	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.APIKey == "" && cfg.LLM.Provider != "ollama" {
		t.Skip("Skipping integration test: LLM_API_KEY not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger := zaptest.NewLogger(t)
	gen, err := llm.NewGenerator(ctx, cfg.LLM, logger)
	require.NoError(t, err)
	require.NotNil(t, gen)

	cat := catalog.Default()
	disease, _ := cat.Disease("alzheimers")
	drug := cat.Drugs("alzheimers")[0]

	e := explain.NewService(gen, logger).Explain(ctx, disease, drug)
	assert.NotEmpty(t, e.Summary)
	t.Logf("explanation source: %s", e.Source)
}
