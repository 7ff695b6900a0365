// Package googletts synthesizes speech through the Google Translate TTS
// endpoint. The endpoint caps each request at roughly 200 characters, so
// longer texts are split on word boundaries and the MP3 segments are
// concatenated.
package googletts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nmoreaux/storyforge-backend/internal/provider"
)

const maxChunkLen = 200

// wordsPerMinute is the speaking rate used to estimate clip duration.
const wordsPerMinute = 150

const modelName = "google-translate-tts"

// Provider fetches synthesized speech over HTTP.
type Provider struct {
	baseURL    string
	lang       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given endpoint and language code.
func NewProvider(baseURL, lang string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		lang:       lang,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "googletts"),
	}
}

// Synthesize converts text to speech and returns the concatenated MP3 data.
// An empty lang falls back to the configured default language.
func (p *Provider) Synthesize(ctx context.Context, text, lang string) (*provider.GeneratedAudio, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("googletts: empty text")
	}
	if lang == "" {
		lang = p.lang
	}

	chunks := splitText(text, maxChunkLen)

	p.log.DebugContext(ctx, "tts request",
		slog.String("lang", lang),
		slog.Int("chars", len(text)),
		slog.Int("chunks", len(chunks)),
	)

	var data []byte
	for i, chunk := range chunks {
		segment, err := p.fetchChunk(ctx, chunk, lang, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("googletts: chunk %d/%d: %w", i+1, len(chunks), err)
		}
		data = append(data, segment...)
	}

	return &provider.GeneratedAudio{
		Data:            data,
		MimeType:        "audio/mpeg",
		DurationSeconds: estimateDuration(text),
		Model:           modelName,
	}, nil
}

func (p *Provider) fetchChunk(ctx context.Context, chunk, lang string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", chunk)
	q.Set("textlen", strconv.Itoa(len(chunk)))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("total", strconv.Itoa(total))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "tts request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// splitText breaks text into chunks of at most maxLen characters, splitting
// on word boundaries. A single word longer than maxLen becomes its own chunk.
func splitText(text string, maxLen int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > maxLen {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// estimateDuration approximates the spoken length of text in whole seconds,
// with a floor of one second.
func estimateDuration(text string) int {
	words := len(strings.Fields(text))
	seconds := words * 60 / wordsPerMinute
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
