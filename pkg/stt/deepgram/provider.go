package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lifemind-be/pkg/stt"
)

const listenURL = "https://api.deepgram.com/v1/listen?model=nova-2&smart_format=true&punctuate=true"

type DeepgramProvider struct {
	apiKey string
	client *http.Client
}

type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func NewDeepgramProvider(apiKey string) *DeepgramProvider {
	return &DeepgramProvider{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (p *DeepgramProvider) Transcribe(ctx context.Context, audio []byte, contentType string) (*stt.Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("deepgram api key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", listenURL, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", p.apiKey))
	req.Header.Set("Content-Type", contentType)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepgram api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var listenResp listenResponse
	if err := json.Unmarshal(bodyBytes, &listenResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(listenResp.Results.Channels) == 0 || len(listenResp.Results.Channels[0].Alternatives) == 0 {
		return &stt.Result{Text: "", Confidence: 0, Provider: "deepgram"}, nil
	}

	alt := listenResp.Results.Channels[0].Alternatives[0]
	return &stt.Result{
		Text:       alt.Transcript,
		Confidence: alt.Confidence,
		Provider:   "deepgram",
	}, nil
}
