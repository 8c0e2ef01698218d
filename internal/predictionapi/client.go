// Package predictionapi is the HTTP client of the remote drug-repurposing
// prediction service.
package predictionapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

const DefaultBaseURL = "http://localhost:5001/api"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchDiseases returns the full disease list.
func (c *Client) FetchDiseases(ctx context.Context) ([]model.Disease, error) {
	var raw []apiDisease
	if err := c.get(ctx, "/diseases", nil, &raw); err != nil {
		return nil, &FetchError{Op: "fetch diseases", StatusCode: statusOf(err), Err: err}
	}
	out := make([]model.Disease, 0, len(raw))
	for _, d := range raw {
		out = append(out, d.toModel())
	}
	return out, nil
}

// FetchPagedDiseases returns one page of the filtered disease listing. An
// empty query lists everything. Page numbers are sent as given.
func (c *Client) FetchPagedDiseases(ctx context.Context, query string, page, pageSize int) (model.DiseasePage, error) {
	q := url.Values{}
	if query != "" {
		q.Set("search", query)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))

	var raw apiDiseasePage
	if err := c.get(ctx, "/v2/diseases", q, &raw); err != nil {
		return model.DiseasePage{}, &FetchError{Op: "fetch paged diseases", Query: query, StatusCode: statusOf(err), Err: err}
	}
	out := model.DiseasePage{
		Diseases:   make([]model.Disease, 0, len(raw.Diseases)),
		Total:      raw.Total,
		Page:       raw.Page,
		Limit:      raw.Limit,
		TotalPages: raw.TotalPages,
	}
	for _, d := range raw.Diseases {
		out.Diseases = append(out.Diseases, d.toModel())
	}
	return out, nil
}

// FetchPredictions asks the legacy model for the top-K drug candidates.
func (c *Client) FetchPredictions(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error) {
	return c.predict(ctx, "fetch predictions", "/predict/", diseaseID, topK, false)
}

// FetchRepurposing asks the extended model; drugs carry Extended scores.
func (c *Client) FetchRepurposing(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error) {
	return c.predict(ctx, "fetch repurposing", "/repurpose/", diseaseID, topK, true)
}

func (c *Client) predict(ctx context.Context, op, prefix, diseaseID string, topK int, extended bool) ([]model.Drug, error) {
	q := url.Values{}
	q.Set("top_k", strconv.Itoa(topK))

	var raw apiPredictionResponse
	if err := c.get(ctx, prefix+url.PathEscape(diseaseID), q, &raw); err != nil {
		return nil, &FetchError{Op: op, DiseaseID: diseaseID, StatusCode: statusOf(err), Err: err}
	}
	drugs := make([]model.Drug, 0, len(raw.Predictions))
	for _, p := range raw.Predictions {
		drugs = append(drugs, p.toDrug(extended))
	}
	c.logger.Debug("predictions fetched",
		zap.String("disease_id", diseaseID),
		zap.Int("count", len(drugs)),
		zap.Bool("extended", extended))
	return drugs, nil
}

// FetchDrugDiseases is the reverse lookup: diseases a drug is predicted for.
func (c *Client) FetchDrugDiseases(ctx context.Context, drugID string, topK int) (model.DrugDiseases, error) {
	q := url.Values{}
	q.Set("top_k", strconv.Itoa(topK))

	var raw apiDrugDiseasesResponse
	if err := c.get(ctx, "/drug-diseases/"+url.PathEscape(drugID), q, &raw); err != nil {
		return model.DrugDiseases{}, &FetchError{Op: "fetch drug diseases", DrugID: drugID, StatusCode: statusOf(err), Err: err}
	}
	out := model.DrugDiseases{
		DrugID:        raw.Drug.ID,
		DrugName:      raw.Drug.Name,
		Predictions:   make([]model.DiseasePrediction, 0, len(raw.Predictions)),
		TotalDiseases: raw.TotalDiseases,
	}
	for _, p := range raw.Predictions {
		out.Predictions = append(out.Predictions, model.DiseasePrediction{
			DiseaseID:       p.DiseaseID,
			DiseaseName:     p.DiseaseName,
			ConfidenceScore: ScoreToPercent(p.Score),
			ConfidenceTier:  p.ConfidenceTier,
		})
	}
	return out, nil
}

// FetchMolecule returns the 3D structure of a drug.
func (c *Client) FetchMolecule(ctx context.Context, drugID string) (model.Molecule, error) {
	var raw apiMolecule
	if err := c.get(ctx, "/molecule/"+url.PathEscape(drugID), nil, &raw); err != nil {
		return model.Molecule{}, &FetchError{Op: "fetch molecule", DrugID: drugID, StatusCode: statusOf(err), Err: err}
	}
	if raw.Error != "" {
		return model.Molecule{}, &FetchError{Op: "fetch molecule", DrugID: drugID, Err: fmt.Errorf("%w: %s", ErrUpstream, raw.Error)}
	}
	m := raw.Molecule
	if m.Atoms == nil {
		m.Atoms = []model.Atom{}
	}
	if m.Bonds == nil {
		m.Bonds = []model.Bond{}
	}
	return m, nil
}

// CheckHealth reports whether the service is up with its model loaded.
// Any failure reads as unhealthy.
func (c *Client) CheckHealth(ctx context.Context) bool {
	return c.health(ctx, "/health")
}

func (c *Client) CheckHealthV2(ctx context.Context) bool {
	return c.health(ctx, "/v2/health")
}

// Health returns the parsed health body for diagnostics.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	body, err := c.raw(ctx, "/health", nil)
	if err != nil {
		return model.Health{}, &FetchError{Op: "check health", StatusCode: statusOf(err), Err: err}
	}
	if !gjson.ValidBytes(body) {
		return model.Health{}, &FetchError{Op: "check health", Err: ErrParse}
	}
	res := gjson.ParseBytes(body)
	return model.Health{
		Status:      res.Get("status").String(),
		ModelLoaded: res.Get("model_loaded").Bool(),
		DataLoaded:  res.Get("data_loaded").Bool(),
	}, nil
}

func (c *Client) health(ctx context.Context, path string) bool {
	body, err := c.raw(ctx, path, nil)
	if err != nil {
		c.logger.Debug("health probe failed", zap.String("path", path), zap.Error(err))
		return false
	}
	res := gjson.ParseBytes(body)
	return res.Get("status").String() == "healthy" && res.Get("model_loaded").Type == gjson.True
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: unexpected status %d", ErrNetwork, e.code)
}

func (e *statusError) Unwrap() error {
	return ErrNetwork
}

func statusOf(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	body, err := c.raw(ctx, path, q)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func (c *Client) raw(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode}
	}
	return body, nil
}
