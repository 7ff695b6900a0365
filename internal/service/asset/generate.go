package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// GenerateAsset produces an asset from a text description using the
// configured AI providers. The call is synchronous: it returns once the
// file is stored.
func (s *Service) GenerateAsset(ctx context.Context, input GenerateAssetInput) (*domain.Asset, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("asset.GenerateAsset: %w", err)
	}

	switch input.Type {
	case domain.AssetTypeImage:
		return s.GenerateImage(ctx, input.Name, input.Description)
	case domain.AssetTypeSound:
		if input.SoundKind == domain.SoundKindMusic {
			return s.generateMusic(ctx, input.Name, input.Description, input.Duration)
		}
		return s.generateTTS(ctx, input.Name, input.Description, input.Language)
	case domain.AssetTypeVideo:
		return nil, fmt.Errorf("asset.GenerateAsset: video generation not implemented: %w", domain.ErrGenerationUnavailable)
	}
	return nil, fmt.Errorf("asset.GenerateAsset: unsupported type %q: %w", input.Type, domain.ErrGenerationUnavailable)
}

// GenerateImage produces an illustration for the description and stores it
// as a private image asset owned by the context user.
func (s *Service) GenerateImage(ctx context.Context, name, description string) (*domain.Asset, error) {
	if !s.cfg.ImageConfigured() {
		return nil, fmt.Errorf("asset.GenerateImage: image provider not configured: %w", domain.ErrGenerationUnavailable)
	}

	img, err := s.ai.GenerateImage(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("asset.GenerateImage: %w", err)
	}

	return s.storeGenerated(ctx, domain.AssetTypeImage, name, img.Data, img.MimeType, map[string]any{
		"width":  img.Width,
		"height": img.Height,
		"model":  img.Model,
		"prompt": description,
	})
}

// GenerateTTS narrates the text and stores it as a private sound asset
// owned by the context user.
func (s *Service) GenerateTTS(ctx context.Context, name, text string) (*domain.Asset, error) {
	return s.generateTTS(ctx, name, text, "")
}

func (s *Service) generateTTS(ctx context.Context, name, text, lang string) (*domain.Asset, error) {
	audio, err := s.tts.Synthesize(ctx, text, lang)
	if err != nil {
		return nil, fmt.Errorf("asset.GenerateTTS: %w", err)
	}

	return s.storeGenerated(ctx, domain.AssetTypeSound, name, audio.Data, audio.MimeType, map[string]any{
		"duration": audio.DurationSeconds,
		"model":    audio.Model,
		"kind":     string(domain.SoundKindTTS),
	})
}

// GenerateMusic produces an ambient music clip matching the description and
// stores it as a private sound asset owned by the context user.
func (s *Service) GenerateMusic(ctx context.Context, name, description string) (*domain.Asset, error) {
	return s.generateMusic(ctx, name, description, 0)
}

func (s *Service) generateMusic(ctx context.Context, name, description string, requestedDuration int) (*domain.Asset, error) {
	if !s.cfg.MusicConfigured() {
		return nil, fmt.Errorf("asset.GenerateMusic: music provider not configured: %w", domain.ErrGenerationUnavailable)
	}

	audio, err := s.ai.GenerateMusic(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("asset.GenerateMusic: %w", err)
	}

	meta := map[string]any{
		"duration": audio.DurationSeconds,
		"model":    audio.Model,
		"kind":     string(domain.SoundKindMusic),
		"prompt":   description,
	}
	if requestedDuration > 0 {
		meta["requested_duration"] = requestedDuration
	}

	return s.storeGenerated(ctx, domain.AssetTypeSound, name, audio.Data, audio.MimeType, meta)
}

// storeGenerated writes the generated bytes and creates the asset record.
func (s *Service) storeGenerated(ctx context.Context, t domain.AssetType, name string, data []byte, mimeType string, metadata map[string]any) (*domain.Asset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filename := uuid.NewString() + extensionFor(mimeType, "", t)
	size, err := s.files.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("asset.storeGenerated: save file: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.asset.Create(ctx, &domain.Asset{
		Type:       t,
		Name:       name,
		Filename:   filename,
		URL:        s.files.URL(filename),
		FileSize:   size,
		MimeType:   mimeType,
		Metadata:   metadata,
		UploadedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if delErr := s.files.Delete(filename); delErr != nil {
			s.log.ErrorContext(ctx, "failed to remove orphaned file", "filename", filename, "error", delErr)
		}
		return nil, fmt.Errorf("asset.storeGenerated: %w", err)
	}

	s.log.InfoContext(ctx, "asset generated", "asset_id", created.ID.Hex(), "type", t, "size", size)
	return created, nil
}
