package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/asset"
	"github.com/nmoreaux/storyforge-backend/internal/service/story"
)

type assetCreatorMock struct {
	createFunc func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error)
	calls      []asset.CreateAssetInput
}

func (m *assetCreatorMock) CreateAsset(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
	m.calls = append(m.calls, input)
	return m.createFunc(ctx, input)
}

type sceneAttacherMock struct {
	updateFunc func(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error)
	calls      []story.UpdateSceneInput
}

func (m *sceneAttacherMock) UpdateScene(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error) {
	m.calls = append(m.calls, input)
	return m.updateFunc(ctx, input)
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write file content: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return &buf, w.FormDataContentType()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpload_CreatesAsset(t *testing.T) {
	t.Parallel()

	created := &domain.Asset{
		ID:       primitive.NewObjectID(),
		Type:     domain.AssetTypeImage,
		Name:     "castle",
		Filename: "castle.png",
		URL:      "/media/assets/castle.png",
		FileSize: 4,
		MimeType: "image/png",
	}
	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return created, nil
		},
	}
	scenes := &sceneAttacherMock{}

	h := NewUploadHandler(assets, scenes, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{
		"type": "image",
		"name": "castle",
	}, "castle.png", []byte("png!"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if len(assets.calls) != 1 {
		t.Fatalf("expected 1 CreateAsset call, got %d", len(assets.calls))
	}
	if got := assets.calls[0]; got.Type != domain.AssetTypeImage || got.Name != "castle" || got.Filename != "castle.png" {
		t.Errorf("unexpected CreateAsset input: %+v", got)
	}
	if string(assets.calls[0].Data) != "png!" {
		t.Errorf("expected file data to be forwarded, got %q", assets.calls[0].Data)
	}
	if len(scenes.calls) != 0 {
		t.Errorf("expected no scene update without scene_id, got %d calls", len(scenes.calls))
	}

	var resp uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != created.ID.Hex() {
		t.Errorf("expected id %s, got %s", created.ID.Hex(), resp.ID)
	}
	if resp.URL != created.URL {
		t.Errorf("expected url %s, got %s", created.URL, resp.URL)
	}
}

func TestUpload_DefaultsNameToFilename(t *testing.T) {
	t.Parallel()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return &domain.Asset{ID: primitive.NewObjectID(), Name: input.Name}, nil
		},
	}

	h := NewUploadHandler(assets, &sceneAttacherMock{}, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{"type": "sound"}, "theme.mp3", []byte("mp3"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if assets.calls[0].Name != "theme.mp3" {
		t.Errorf("expected name to default to filename, got %q", assets.calls[0].Name)
	}
}

func TestUpload_AttachesToScene(t *testing.T) {
	t.Parallel()

	assetID := primitive.NewObjectID()
	sceneID := primitive.NewObjectID()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return &domain.Asset{ID: assetID, Type: input.Type}, nil
		},
	}
	scenes := &sceneAttacherMock{
		updateFunc: func(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error) {
			return &domain.Scene{ID: input.ID}, nil
		},
	}

	h := NewUploadHandler(assets, scenes, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{
		"type":        "sound",
		"scene_id":    sceneID.Hex(),
		"asset_field": "music",
	}, "ambience.mp3", []byte("mp3"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if len(scenes.calls) != 1 {
		t.Fatalf("expected 1 UpdateScene call, got %d", len(scenes.calls))
	}
	if scenes.calls[0].ID != sceneID {
		t.Errorf("expected scene id %s, got %s", sceneID.Hex(), scenes.calls[0].ID.Hex())
	}
	if scenes.calls[0].MusicID == nil || *scenes.calls[0].MusicID != assetID {
		t.Errorf("expected music id %s, got %v", assetID.Hex(), scenes.calls[0].MusicID)
	}
	if scenes.calls[0].ImageID != nil || scenes.calls[0].SoundID != nil {
		t.Error("expected only the music slot to be set")
	}
}

func TestUpload_InvalidAssetField(t *testing.T) {
	t.Parallel()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return &domain.Asset{ID: primitive.NewObjectID()}, nil
		},
	}
	scenes := &sceneAttacherMock{}

	h := NewUploadHandler(assets, scenes, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{
		"type":        "image",
		"scene_id":    primitive.NewObjectID().Hex(),
		"asset_field": "background",
	}, "bg.png", []byte("png"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if len(scenes.calls) != 0 {
		t.Errorf("expected no UpdateScene call, got %d", len(scenes.calls))
	}
}

func TestUpload_MissingFile(t *testing.T) {
	t.Parallel()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			t.Error("CreateAsset should not be called without a file")
			return nil, nil
		},
	}

	h := NewUploadHandler(assets, &sceneAttacherMock{}, 1<<20, discardLogger())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("type", "image"); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpload_ValidationError(t *testing.T) {
	t.Parallel()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return nil, domain.NewValidationError("type", "must be one of image, sound, video")
		},
	}

	h := NewUploadHandler(assets, &sceneAttacherMock{}, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{"type": "hologram"}, "x.bin", []byte("x"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpload_Forbidden(t *testing.T) {
	t.Parallel()

	assets := &assetCreatorMock{
		createFunc: func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
			return nil, domain.ErrForbidden
		},
	}

	h := NewUploadHandler(assets, &sceneAttacherMock{}, 1<<20, discardLogger())

	body, contentType := multipartBody(t, map[string]string{"type": "image"}, "x.png", []byte("x"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}
