package assemblyai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lifemind-be/pkg/stt"
)

const (
	transcriptURL = "https://api.assemblyai.com/v2/transcript"
	pollInterval  = 2 * time.Second
)

type AssemblyAIProvider struct {
	apiKey string
	client *http.Client
}

type transcriptRequest struct {
	Audio        string `json:"audio"`
	LanguageCode string `json:"language_code"`
	Punctuate    bool   `json:"punctuate"`
	FormatText   bool   `json:"format_text"`
}

type transcriptResponse struct {
	ID     string  `json:"id"`
	Status string  `json:"status"` // "queued" | "processing" | "completed" | "error"
	Text   string  `json:"text"`
	Error  string  `json:"error,omitempty"`
	Conf   float64 `json:"confidence"`
}

func NewAssemblyAIProvider(apiKey string) *AssemblyAIProvider {
	return &AssemblyAIProvider{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (p *AssemblyAIProvider) Transcribe(ctx context.Context, audio []byte, contentType string) (*stt.Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("assemblyai api key not configured")
	}

	reqBody := transcriptRequest{
		Audio:        fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(audio)),
		LanguageCode: "en",
		Punctuate:    true,
		FormatText:   true,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	submitted, err := p.doRequest(ctx, "POST", transcriptURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	// The transcript endpoint is async: poll until the job settles.
	for submitted.Status != "completed" {
		if submitted.Status == "error" {
			return nil, fmt.Errorf("assemblyai transcription failed: %s", submitted.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}

		submitted, err = p.doRequest(ctx, "GET", fmt.Sprintf("%s/%s", transcriptURL, submitted.ID), nil)
		if err != nil {
			return nil, err
		}
	}

	confidence := submitted.Conf
	if confidence == 0 {
		confidence = 0.9
	}

	return &stt.Result{
		Text:       submitted.Text,
		Confidence: confidence,
		Provider:   "assemblyai",
	}, nil
}

func (p *AssemblyAIProvider) doRequest(ctx context.Context, method, url string, body io.Reader) (*transcriptResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assemblyai api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var tr transcriptResponse
	if err := json.Unmarshal(bodyBytes, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &tr, nil
}
