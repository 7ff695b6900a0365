package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/asset"
	"github.com/nmoreaux/storyforge-backend/internal/service/story"
)

// assetCreator defines the minimal interface needed by UploadHandler.
type assetCreator interface {
	CreateAsset(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error)
}

// sceneAttacher attaches an uploaded asset to a scene.
type sceneAttacher interface {
	UpdateScene(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error)
}

// UploadHandler serves multipart file uploads as an alternative to the
// base64 createAsset mutation for large files.
type UploadHandler struct {
	assets   assetCreator
	scenes   sceneAttacher
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler. maxBytes caps the request body.
func NewUploadHandler(assets assetCreator, scenes sceneAttacher, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		assets:   assets,
		scenes:   scenes,
		maxBytes: maxBytes,
		log:      logger.With("handler", "upload"),
	}
}

type uploadResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

// Upload handles POST /upload. Expects multipart form fields:
//
//	file        - the file content (required)
//	type        - asset type: image, sound or video (required)
//	name        - display name; defaults to the filename
//	public      - "true" makes the asset public
//	scene_id    - attach the asset to this scene
//	asset_field - which scene slot to fill: image, sound or music
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	created, err := h.assets.CreateAsset(r.Context(), asset.CreateAssetInput{
		Type:     domain.AssetType(r.FormValue("type")),
		Name:     name,
		Filename: header.Filename,
		Data:     data,
		MimeType: header.Header.Get("Content-Type"),
		IsPublic: r.FormValue("public") == "true",
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if sceneID := r.FormValue("scene_id"); sceneID != "" {
		if err := h.attachToScene(r.Context(), sceneID, r.FormValue("asset_field"), created.ID); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:       created.ID.Hex(),
		Name:     created.Name,
		Type:     string(created.Type),
		URL:      created.URL,
		FileSize: created.FileSize,
		MimeType: created.MimeType,
	})
}

func (h *UploadHandler) attachToScene(ctx context.Context, rawSceneID, field string, assetID primitive.ObjectID) error {
	sceneID, err := primitive.ObjectIDFromHex(rawSceneID)
	if err != nil {
		return domain.NewValidationError("scene_id", "must be a valid object id")
	}

	input := story.UpdateSceneInput{ID: sceneID}
	switch field {
	case "image":
		input.ImageID = &assetID
	case "sound":
		input.SoundID = &assetID
	case "music":
		input.MusicID = &assetID
	default:
		return domain.NewValidationError("asset_field", "must be image, sound or music")
	}

	_, err = h.scenes.UpdateScene(ctx, input)
	return err
}

func (h *UploadHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
