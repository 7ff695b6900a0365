package domain

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset is media metadata: an uploaded or AI-generated file stored on disk
// and referenced by scenes. Metadata is provider-specific (dimensions for
// images, duration and model for generated audio).
type Asset struct {
	ID         primitive.ObjectID
	Type       AssetType
	Name       string
	Filename   string
	URL        string
	FileSize   int64
	MimeType   string
	Metadata   map[string]any
	UploadedBy primitive.ObjectID
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FileExtension returns the filename extension without the dot, or "".
func (a *Asset) FileExtension() string {
	idx := strings.LastIndex(a.Filename, ".")
	if idx < 0 || idx == len(a.Filename)-1 {
		return ""
	}
	return a.Filename[idx+1:]
}

// FileSizeMB returns the file size in megabytes rounded to two decimals.
func (a *Asset) FileSizeMB() float64 {
	if a.FileSize <= 0 {
		return 0
	}
	mb := float64(a.FileSize) / (1024 * 1024)
	return float64(int(mb*100+0.5)) / 100
}

// Dimensions returns "WxH" for assets whose metadata carries numeric width
// and height, or nil.
func (a *Asset) Dimensions() *string {
	w, wok := metadataInt(a.Metadata, "width")
	h, hok := metadataInt(a.Metadata, "height")
	if !wok || !hok {
		return nil
	}
	s := strconv.Itoa(w) + "x" + strconv.Itoa(h)
	return &s
}

// Duration returns the duration in seconds for assets whose metadata carries
// one, or nil.
func (a *Asset) Duration() *int {
	d, ok := metadataInt(a.Metadata, "duration")
	if !ok {
		return nil
	}
	return &d
}

// metadataInt reads an integral value from a free-form metadata document.
// BSON decoding can surface numbers as int32, int64, or float64.
func metadataInt(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
