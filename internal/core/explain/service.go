// Package explain turns a disease and a drug candidate into a sectioned,
// human-readable rationale.
package explain

import (
	"context"

	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/llm"
)

type Service struct {
	LLM    llm.Generator
	Logger *zap.Logger
}

// NewService accepts a nil generator; every explanation is then templated.
func NewService(gen llm.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{LLM: gen, Logger: logger}
}

// Explain never fails: any generation problem yields Fallback.
func (s *Service) Explain(ctx context.Context, disease model.Disease, drug model.Drug) model.Explanation {
	if s.LLM == nil {
		return Fallback(disease, drug)
	}

	response, err := s.LLM.Generate(ctx, buildPrompt(disease, drug))
	if err != nil {
		s.Logger.Warn("explanation generation failed, using template",
			zap.String("disease_id", disease.ID),
			zap.String("drug_id", drug.ID),
			zap.Error(err))
		return Fallback(disease, drug)
	}

	e, ok := parse(response)
	if !ok {
		s.Logger.Warn("explanation response had no summary, using template",
			zap.String("disease_id", disease.ID),
			zap.String("drug_id", drug.ID),
			zap.Int("response_len", len(response)))
		return Fallback(disease, drug)
	}
	return e
}
