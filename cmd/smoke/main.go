// Command smoke drives a running server through the select, graph and
// explanation flow.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	disease := flag.String("disease", "alzheimers", "disease id to select")
	flag.Parse()

	s := &smoke{baseURL: *baseURL, client: &http.Client{Timeout: 30 * time.Second}}
	if err := s.run(*disease); err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	fmt.Println("ALL PASSED")
}

type smoke struct {
	baseURL string
	client  *http.Client
}

func (s *smoke) run(disease string) error {
	fmt.Println("1. Health...")
	body, err := s.send(http.MethodGet, "/healthz", nil, http.StatusOK)
	if err != nil {
		return err
	}
	fmt.Printf("PASSED: Health (prediction service up: %v)\n", gjson.GetBytes(body, "prediction_service").Bool())

	fmt.Println("2. Diseases...")
	body, err = s.send(http.MethodGet, "/api/diseases", nil, http.StatusOK)
	if err != nil {
		return err
	}
	fmt.Printf("PASSED: Diseases (%d listed)\n", len(gjson.GetBytes(body, "diseases").Array()))

	fmt.Println("3. Select disease...")
	if _, err := s.send(http.MethodPost, "/api/select/disease", map[string]string{"disease_id": disease}, http.StatusAccepted); err != nil {
		return err
	}
	state, err := s.waitSettled(15 * time.Second)
	if err != nil {
		return err
	}
	if status := gjson.GetBytes(state, "status").String(); status != "ready" {
		return fmt.Errorf("selection ended %s: %s", status, gjson.GetBytes(state, "error").String())
	}
	fmt.Printf("PASSED: Select disease (%d candidates, top %s)\n",
		len(gjson.GetBytes(state, "predictions").Array()),
		gjson.GetBytes(state, "selected_drug.name").String())

	fmt.Println("4. Graph...")
	body, err = s.send(http.MethodGet, "/api/graph", nil, http.StatusOK)
	if err != nil {
		return err
	}
	fmt.Printf("PASSED: Graph (%d nodes, %d links)\n",
		gjson.GetBytes(body, "stats.total_nodes").Int(), gjson.GetBytes(body, "stats.total_links").Int())

	fmt.Println("5. Explanation...")
	body, err = s.send(http.MethodGet, "/api/explanation", nil, http.StatusOK)
	if err != nil {
		return err
	}
	if gjson.GetBytes(body, "summary").String() == "" {
		return fmt.Errorf("explanation has no summary")
	}
	fmt.Printf("PASSED: Explanation (source %s)\n", gjson.GetBytes(body, "source").String())
	return nil
}

func (s *smoke) waitSettled(timeout time.Duration) ([]byte, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		body, err := s.send(http.MethodGet, "/api/state", nil, http.StatusOK)
		if err != nil {
			return nil, err
		}
		switch gjson.GetBytes(body, "status").String() {
		case "ready", "failed":
			return body, nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil, fmt.Errorf("state did not settle within %s", timeout)
}

func (s *smoke) send(method, endpoint string, payload any, want int) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequest(method, s.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, endpoint, resp.StatusCode, respBody)
	}
	return respBody, nil
}
