package core

import (
	"context"
	"sync"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

type predictResult struct {
	drugs []model.Drug
	err   error
}

// MockPredictor answers from Results, or blocks on Gates[diseaseID] when set.
type MockPredictor struct {
	mu      sync.Mutex
	Results map[string]predictResult
	Gates   map[string]chan predictResult
	Calls   []string
	Started chan string
}

func (m *MockPredictor) Predict(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, diseaseID)
	gate := m.Gates[diseaseID]
	res := m.Results[diseaseID]
	m.mu.Unlock()

	if m.Started != nil {
		m.Started <- diseaseID
	}
	if gate != nil {
		select {
		case res = <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return res.drugs, res.err
}

type pageKey struct {
	query string
	page  int
}

type MockDiseaseSource struct {
	mu      sync.Mutex
	Pages   map[pageKey]model.DiseasePage
	Gates   map[pageKey]chan struct{}
	Err     error
	Calls   []pageKey
	Started chan pageKey
}

func (m *MockDiseaseSource) FetchPagedDiseases(ctx context.Context, query string, page, pageSize int) (model.DiseasePage, error) {
	k := pageKey{query, page}
	m.mu.Lock()
	m.Calls = append(m.Calls, k)
	gate := m.Gates[k]
	res := m.Pages[k]
	err := m.Err
	m.mu.Unlock()

	if m.Started != nil {
		m.Started <- k
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return model.DiseasePage{}, err
	}
	return res, nil
}

func diseases(ids ...string) []model.Disease {
	out := make([]model.Disease, len(ids))
	for i, id := range ids {
		out[i] = model.Disease{ID: id, Name: id}
	}
	return out
}
