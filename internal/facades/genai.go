package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// ErrNoImage is returned when the generative API answers without image data.
var ErrNoImage = errors.New("generative api returned no image")

// ImageOptions tune the generated image.
type ImageOptions struct {
	AspectRatio string
	Resolution  string
}

// GenAIClient calls a Gemini-style generateContent endpoint.
type GenAIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGenAIClient creates a client whose requests give up after timeout.
func NewGenAIClient(baseURL, apiKey string, timeout time.Duration) *GenAIClient {
	return &GenAIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// GenerateImage sends the photo and prompt and returns the first image in the answer.
func (c *GenAIClient) GenerateImage(ctx context.Context, model string, image []byte, mimeType, prompt string, opts ImageOptions) ([]byte, string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: prompt},
		}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}
	if opts.AspectRatio != "" || opts.Resolution != "" {
		req.GenerationConfig.ImageConfig = &imageConfig{AspectRatio: opts.AspectRatio, ImageSize: opts.Resolution}
	}

	body, err := c.generateContent(ctx, model, req)
	if err != nil {
		return nil, "", err
	}

	if reason := failureReason(body); reason != "" {
		return nil, "", fmt.Errorf("%w: %s", ErrNoImage, reason)
	}

	for _, p := range gjson.GetBytes(body, "candidates.0.content.parts").Array() {
		data := p.Get("inlineData")
		if !data.Exists() {
			data = p.Get("inline_data")
		}
		if !data.Exists() {
			continue
		}

		raw, err := base64.StdEncoding.DecodeString(data.Get("data").String())
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode image data: %w", err)
		}
		mime := data.Get("mimeType").String()
		if mime == "" {
			mime = data.Get("mime_type").String()
		}
		if mime == "" {
			mime = http.DetectContentType(raw)
		}
		return raw, mime, nil
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.#.text").Array()
	if len(text) > 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrNoImage, text[0].String())
	}
	return nil, "", ErrNoImage
}

// DescribeImage sends the photo with an instruction and returns the text answer.
func (c *GenAIClient) DescribeImage(ctx context.Context, model string, image []byte, mimeType, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: prompt},
		}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT"},
		},
	}

	body, err := c.generateContent(ctx, model, req)
	if err != nil {
		return "", err
	}
	if reason := failureReason(body); reason != "" {
		return "", fmt.Errorf("generative api refused: %s", reason)
	}

	var b strings.Builder
	for _, t := range gjson.GetBytes(body, "candidates.0.content.parts.#.text").Array() {
		b.WriteString(t.String())
	}
	if b.Len() == 0 {
		return "", errors.New("generative api returned no text")
	}
	return strings.TrimSpace(b.String()), nil
}

func (c *GenAIClient) generateContent(ctx context.Context, model string, payload generateRequest) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("generative api request failed", "model", model, "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.FromContext(ctx).Infow("generative api response",
		"model", model,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = string(body)
		}
		return nil, fmt.Errorf("generative api: status %d, body: %s", resp.StatusCode, msg)
	}
	return body, nil
}

func failureReason(body []byte) string {
	if r := gjson.GetBytes(body, "promptFeedback.blockReason").String(); r != "" {
		return "blocked: " + r
	}
	if r := gjson.GetBytes(body, "candidates.0.finishReason").String(); r != "" && r != "STOP" {
		return "finish reason: " + r
	}
	return ""
}
