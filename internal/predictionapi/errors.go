package predictionapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNetwork covers transport failures and non-success HTTP statuses.
	ErrNetwork = errors.New("prediction service unreachable")
	// ErrParse is returned when a response body does not match the expected shape.
	ErrParse = errors.New("malformed prediction service response")
	// ErrUpstream is returned when the service answers with an {"error": ...} body.
	ErrUpstream = errors.New("prediction service reported an error")
)

// FetchError carries the request context of a failed call.
type FetchError struct {
	Op         string
	DiseaseID  string
	DrugID     string
	Query      string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.DiseaseID != "" {
		fmt.Fprintf(&b, " disease=%s", e.DiseaseID)
	}
	if e.DrugID != "" {
		fmt.Fprintf(&b, " drug=%s", e.DrugID)
	}
	if e.Query != "" {
		fmt.Fprintf(&b, " query=%q", e.Query)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " status=%d", e.StatusCode)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
