package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// CreateAsset stores an uploaded file and its metadata record. The file is
// written under a fresh UUID name; the original filename only survives in
// the extension.
func (s *Service) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("asset.CreateAsset: %w", err)
	}

	// Step 2: write the file.
	filename := uuid.NewString() + extensionFor(input.MimeType, input.Filename, input.Type)
	size, err := s.files.Save(filename, input.Data)
	if err != nil {
		return nil, fmt.Errorf("asset.CreateAsset: save file: %w", err)
	}

	// Step 3: persist the record.
	now := time.Now().UTC()
	created, err := s.asset.Create(ctx, &domain.Asset{
		Type:       input.Type,
		Name:       input.Name,
		Filename:   filename,
		URL:        s.files.URL(filename),
		FileSize:   size,
		MimeType:   input.MimeType,
		Metadata:   input.Metadata,
		UploadedBy: userID,
		IsPublic:   input.IsPublic,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		// The record failed; don't leave the file orphaned.
		if delErr := s.files.Delete(filename); delErr != nil {
			s.log.ErrorContext(ctx, "failed to remove orphaned file", "filename", filename, "error", delErr)
		}
		return nil, fmt.Errorf("asset.CreateAsset: %w", err)
	}

	s.log.InfoContext(ctx, "asset created", "asset_id", created.ID.Hex(), "type", created.Type, "size", created.FileSize)
	return created, nil
}

// GetAsset returns an asset. Private assets are visible only to their
// uploader and to admins.
func (s *Service) GetAsset(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
	a, err := s.asset.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("asset.GetAsset: %w", err)
	}
	if !a.IsPublic {
		if err := s.canMutate(ctx, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ListAssets lists assets, optionally filtered by type. Authenticated users
// only.
func (s *Service) ListAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		assets []domain.Asset
		err    error
	)
	if typeFilter != nil {
		assets, err = s.asset.ListByType(ctx, *typeFilter)
	} else {
		assets, err = s.asset.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("asset.ListAssets: %w", err)
	}
	return assets, nil
}

// ListAssetsByUploader lists a user's uploads. Authenticated users only.
func (s *Service) ListAssetsByUploader(ctx context.Context, uploaderID primitive.ObjectID) ([]domain.Asset, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	assets, err := s.asset.ListByUploader(ctx, uploaderID)
	if err != nil {
		return nil, fmt.Errorf("asset.ListAssetsByUploader: %w", err)
	}
	return assets, nil
}

// MyAssets lists the authenticated user's uploads.
func (s *Service) MyAssets(ctx context.Context) ([]domain.Asset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ListAssetsByUploader(ctx, userID)
}

// ListPublicAssets lists public assets, optionally filtered by type. Open to
// anonymous callers.
func (s *Service) ListPublicAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	assets, err := s.asset.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("asset.ListPublicAssets: %w", err)
	}
	if typeFilter == nil {
		return assets, nil
	}

	filtered := assets[:0]
	for _, a := range assets {
		if a.Type == *typeFilter {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// UpdateAsset updates asset metadata. Uploader or admin only.
func (s *Service) UpdateAsset(ctx context.Context, input UpdateAssetInput) (*domain.Asset, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("asset.UpdateAsset: %w", err)
	}

	// Step 2: load and gate.
	a, err := s.asset.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("asset.UpdateAsset: %w", err)
	}
	if err := s.canMutate(ctx, a); err != nil {
		return nil, err
	}

	// Step 3: apply changes and persist.
	if input.Name != nil {
		a.Name = *input.Name
	}
	if input.IsPublic != nil {
		a.IsPublic = *input.IsPublic
	}
	if input.Metadata != nil {
		a.Metadata = input.Metadata
	}
	a.UpdatedAt = time.Now().UTC()

	updated, err := s.asset.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("asset.UpdateAsset: %w", err)
	}

	s.log.InfoContext(ctx, "asset updated", "asset_id", updated.ID.Hex())
	return updated, nil
}

// DeleteAsset removes the record and the stored file. Uploader or admin
// only. A missing file is not an error.
func (s *Service) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	a, err := s.asset.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("asset.DeleteAsset: %w", err)
	}
	if err := s.canMutate(ctx, a); err != nil {
		return err
	}

	if err := s.asset.Delete(ctx, id); err != nil {
		return fmt.Errorf("asset.DeleteAsset: %w", err)
	}
	if err := s.files.Delete(a.Filename); err != nil {
		s.log.ErrorContext(ctx, "failed to remove asset file", "asset_id", id.Hex(), "filename", a.Filename, "error", err)
	}

	s.log.InfoContext(ctx, "asset deleted", "asset_id", id.Hex())
	return nil
}

// canMutate gates write access to an asset: its uploader or an admin.
func (s *Service) canMutate(ctx context.Context, a *domain.Asset) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == a.UploadedBy || ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	return domain.ErrForbidden
}

// extensionFor picks a file extension from the MIME type, falling back to
// the original filename and then to a per-type default.
func extensionFor(mimeType, originalName string, t domain.AssetType) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	}

	if dot := lastDot(originalName); dot >= 0 && dot < len(originalName)-1 {
		return originalName[dot:]
	}

	switch t {
	case domain.AssetTypeImage:
		return ".png"
	case domain.AssetTypeSound:
		return ".mp3"
	case domain.AssetTypeVideo:
		return ".mp4"
	}
	return ".bin"
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
		if s[i] == '/' || s[i] == '\\' {
			return -1
		}
	}
	return -1
}
