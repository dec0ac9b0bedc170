package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
)

// Prediction statuses reported by Replicate
const (
	statusStarting   = "starting"
	statusProcessing = "processing"
	statusSucceeded  = "succeeded"
	statusFailed     = "failed"
	statusCanceled   = "canceled"
)

// Config holds the Replicate client settings
type Config struct {
	APIToken       string
	BaseURL        string
	ModelVersion   string
	InferenceSteps int
	RequestTimeout time.Duration
	PollInterval   time.Duration
}

// ReplicateClient implements the ImageGenerator port against the Replicate predictions API.
// Each Generate call creates one prediction and polls it until it reaches a terminal status.
type ReplicateClient struct {
	config       Config
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReplicateClient creates a new ReplicateClient
func NewReplicateClient(config Config, httpClient *http.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReplicateClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.RequestTimeout}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &ReplicateClient{
		config:       config,
		httpClient:   httpClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

type predictionInput struct {
	Prompt            string `json:"prompt"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	NumInferenceSteps int    `json:"num_inference_steps"`
	Seed              int64  `json:"seed"`
}

type createPredictionRequest struct {
	Version string          `json:"version"`
	Input   predictionInput `json:"input"`
}

type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
}

// outputURLs accepts both a list of URLs and a single URL
func (p *prediction) outputURLs() []string {
	if len(p.Output) == 0 || string(p.Output) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(p.Output, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(p.Output, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// Generate runs one prediction and returns its output URLs
func (c *ReplicateClient) Generate(ctx context.Context, prompt external.ImagePrompt) ([]string, error) {
	if c.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = c.timeProvider.WithTimeout(ctx, coreport.Duration(c.config.RequestTimeout))
		defer cancel()
	}

	pred, err := c.create(ctx, prompt)
	if err != nil {
		return nil, err
	}

	for pred.Status == statusStarting || pred.Status == statusProcessing {
		if err := c.timeProvider.After(ctx, coreport.Duration(c.config.PollInterval)); err != nil {
			return nil, fmt.Errorf("prediction %s did not finish: %w", pred.ID, err)
		}
		if pred, err = c.get(ctx, pred.ID); err != nil {
			return nil, err
		}
	}

	switch pred.Status {
	case statusSucceeded:
		urls := pred.outputURLs()
		c.logger.Debug("Prediction succeeded", map[string]any{
			"prediction_id": pred.ID,
			"images":        len(urls),
		})
		return urls, nil
	case statusFailed, statusCanceled:
		return nil, fmt.Errorf("prediction %s %s: %v", pred.ID, pred.Status, pred.Error)
	default:
		return nil, fmt.Errorf("prediction %s returned unknown status %q", pred.ID, pred.Status)
	}
}

func (c *ReplicateClient) create(ctx context.Context, prompt external.ImagePrompt) (*prediction, error) {
	body, err := json.Marshal(createPredictionRequest{
		Version: c.config.ModelVersion,
		Input: predictionInput{
			Prompt:            prompt.Prompt,
			Width:             prompt.Width,
			Height:            prompt.Height,
			NumInferenceSteps: c.config.InferenceSteps,
			Seed:              prompt.Seed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/predictions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *ReplicateClient) get(ctx context.Context, id string) (*prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/predictions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction poll: %w", err)
	}
	return c.do(req)
}

func (c *ReplicateClient) do(req *http.Request) (*prediction, error) {
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("replicate request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read replicate response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("Replicate returned an error status", map[string]any{
			"status": resp.StatusCode,
			"path":   req.URL.Path,
		})
		return nil, fmt.Errorf("replicate returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}

	var pred prediction
	if err := json.Unmarshal(payload, &pred); err != nil {
		return nil, fmt.Errorf("failed to decode replicate response: %w", err)
	}
	if pred.ID == "" {
		return nil, errors.New("replicate response has no prediction id")
	}
	return &pred, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
