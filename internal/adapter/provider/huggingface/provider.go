// Package huggingface generates images and ambient music through the
// Hugging Face Inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nmoreaux/storyforge-backend/internal/config"
	"github.com/nmoreaux/storyforge-backend/internal/provider"
)

const (
	inferenceSteps = 30
	guidanceScale  = 7.5
	negativePrompt = "blurry, low quality, distorted, deformed"
)

// Provider calls Hugging Face hosted models over HTTP.
type Provider struct {
	baseURL    string
	token      string
	imageModel string
	musicModel string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the AI configuration.
func NewProvider(cfg config.AIConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.HFBaseURL,
		token:      cfg.HFToken,
		imageModel: cfg.ImageModel,
		musicModel: cfg.MusicModel,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.With("adapter", "huggingface"),
	}
}

type inferenceRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters *diffuserParams `json:"parameters,omitempty"`
}

type diffuserParams struct {
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	NegativePrompt    string  `json:"negative_prompt"`
}

// GenerateImage renders an image for the prompt with a Stable Diffusion model.
func (p *Provider) GenerateImage(ctx context.Context, prompt string) (*provider.GeneratedImage, error) {
	body := inferenceRequest{
		Inputs: prompt,
		Parameters: &diffuserParams{
			NumInferenceSteps: inferenceSteps,
			GuidanceScale:     guidanceScale,
			NegativePrompt:    negativePrompt,
		},
	}

	p.log.DebugContext(ctx, "image generation request", slog.String("model", p.imageModel))

	data, mimeType, err := p.infer(ctx, p.imageModel, body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: generate image: %w", err)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	result := &provider.GeneratedImage{
		Data:     data,
		MimeType: mimeType,
		Model:    p.imageModel,
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = cfg.Width
		result.Height = cfg.Height
	}

	p.log.DebugContext(ctx, "image generated",
		slog.String("model", p.imageModel),
		slog.Int("bytes", len(data)),
		slog.Int("width", result.Width),
		slog.Int("height", result.Height),
	)

	return result, nil
}

// GenerateMusic renders a short ambient clip for the prompt with a MusicGen model.
func (p *Provider) GenerateMusic(ctx context.Context, prompt string) (*provider.GeneratedAudio, error) {
	p.log.DebugContext(ctx, "music generation request", slog.String("model", p.musicModel))

	data, mimeType, err := p.infer(ctx, p.musicModel, inferenceRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("huggingface: generate music: %w", err)
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	result := &provider.GeneratedAudio{
		Data:            data,
		MimeType:        mimeType,
		DurationSeconds: wavDuration(data),
		Model:           p.musicModel,
	}

	p.log.DebugContext(ctx, "music generated",
		slog.String("model", p.musicModel),
		slog.Int("bytes", len(data)),
		slog.Int("duration_s", result.DurationSeconds),
	)

	return result, nil
}

// infer POSTs an inference request and returns the raw response bytes plus
// the Content-Type the model server reported.
func (p *Provider) infer(ctx context.Context, model string, payload inferenceRequest) ([]byte, string, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}

	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/"+model, bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+p.token)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	resp, err := p.doWithRetry(ctx, build, model)
	if err != nil {
		p.log.ErrorContext(ctx, "inference request failed", slog.String("model", model), slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Error responses carry a JSON body with an "error" field.
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return nil, "", fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Hosted models return 503 while they are being loaded.
func (p *Provider) doWithRetry(ctx context.Context, build func() (*http.Request, error), model string) (*http.Response, error) {
	req, err := build()
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "inference retry", slog.String("model", model), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(2 * time.Second)

	req, err = build()
	if err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}

// wavDuration reads the duration in whole seconds from a RIFF/WAVE header,
// or 0 if the data is not a parseable WAV file.
func wavDuration(data []byte) int {
	if len(data) < 44 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0
	}

	// Walk the chunks to find fmt (for byte rate) and data (for size).
	var byteRate uint32
	var dataSize uint32
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		switch chunkID {
		case "fmt ":
			if offset+20 <= len(data) {
				byteRate = binary.LittleEndian.Uint32(data[offset+16 : offset+20])
			}
		case "data":
			dataSize = chunkSize
		}
		offset += 8 + int(chunkSize)
		if chunkSize%2 == 1 {
			offset++
		}
	}

	if byteRate == 0 || dataSize == 0 {
		return 0
	}
	return int(dataSize / byteRate)
}
