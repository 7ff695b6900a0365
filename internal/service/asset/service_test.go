package asset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/config"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/provider"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

//go:generate moq -out asset_repo_mock_test.go -pkg asset . assetRepo

type deps struct {
	assets *assetRepoMock
	files  *fileStoreMock
	ai     *aiGeneratorMock
	tts    *speechSynthesizerMock
	cfg    config.AIConfig
}

func testService(d deps) *Service {
	if d.assets == nil {
		d.assets = &assetRepoMock{}
	}
	if d.files == nil {
		d.files = &fileStoreMock{
			SaveFunc:   func(filename string, data []byte) (int64, error) { return int64(len(data)), nil },
			DeleteFunc: func(filename string) error { return nil },
			URLFunc:    func(filename string) string { return "/media/assets/" + filename },
		}
	}
	if d.ai == nil {
		d.ai = &aiGeneratorMock{}
	}
	if d.tts == nil {
		d.tts = &speechSynthesizerMock{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, d.assets, d.files, d.ai, d.tts, d.cfg)
}

func configuredAI() config.AIConfig {
	return config.AIConfig{HFToken: "hf_test_token"}
}

func adminCtx(id primitive.ObjectID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleAdmin))
}

func playerCtx(id primitive.ObjectID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithUserRole(ctx, string(domain.UserRolePlayer))
}

func TestService_CreateAsset(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	assets := &assetRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
			if a.UploadedBy != userID {
				t.Errorf("got uploader %s, want caller", a.UploadedBy.Hex())
			}
			if a.FileSize != 4 {
				t.Errorf("got size %d, want 4", a.FileSize)
			}
			if !strings.HasSuffix(a.Filename, ".png") {
				t.Errorf("filename %q should carry the png extension", a.Filename)
			}
			if a.Filename == "cover.png" {
				t.Error("expected a fresh storage name, not the upload name")
			}
			if !strings.HasPrefix(a.URL, "/media/assets/") {
				t.Errorf("unexpected URL %q", a.URL)
			}
			a.ID = primitive.NewObjectID()
			return a, nil
		},
	}

	svc := testService(deps{assets: assets})

	created, err := svc.CreateAsset(playerCtx(userID), CreateAssetInput{
		Type:     domain.AssetTypeImage,
		Name:     "Cover",
		Filename: "cover.png",
		Data:     []byte("\x89PNG"),
		MimeType: "image/png",
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected created asset to have an ID")
	}
}

func TestService_CreateAsset_RepoFailureRemovesFile(t *testing.T) {
	t.Parallel()

	files := &fileStoreMock{
		SaveFunc:   func(filename string, data []byte) (int64, error) { return int64(len(data)), nil },
		DeleteFunc: func(filename string) error { return nil },
		URLFunc:    func(filename string) string { return "/media/assets/" + filename },
	}
	assets := &assetRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
			return nil, errors.New("write failed")
		},
	}

	svc := testService(deps{assets: assets, files: files})

	_, err := svc.CreateAsset(playerCtx(primitive.NewObjectID()), CreateAssetInput{
		Type:     domain.AssetTypeImage,
		Name:     "Cover",
		Data:     []byte("x"),
		MimeType: "image/png",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(files.DeleteCalls()) != 1 {
		t.Error("expected the stored file to be cleaned up")
	}
}

func TestService_CreateAsset_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := testService(deps{})

	_, err := svc.CreateAsset(context.Background(), CreateAssetInput{
		Type: domain.AssetTypeImage,
		Name: "Cover",
		Data: []byte("x"),
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_GetAsset_PrivateGating(t *testing.T) {
	t.Parallel()

	ownerID := primitive.NewObjectID()
	a := &domain.Asset{ID: primitive.NewObjectID(), UploadedBy: ownerID, IsPublic: false}
	assets := &assetRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) { return a, nil },
	}
	svc := testService(deps{assets: assets})

	if _, err := svc.GetAsset(playerCtx(ownerID), a.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetAsset(adminCtx(primitive.NewObjectID()), a.ID); err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if _, err := svc.GetAsset(playerCtx(primitive.NewObjectID()), a.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_GetAsset_PublicVisibleToAll(t *testing.T) {
	t.Parallel()

	a := &domain.Asset{ID: primitive.NewObjectID(), UploadedBy: primitive.NewObjectID(), IsPublic: true}
	assets := &assetRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) { return a, nil },
	}
	svc := testService(deps{assets: assets})

	if _, err := svc.GetAsset(context.Background(), a.ID); err != nil {
		t.Fatalf("anonymous read of public asset: %v", err)
	}
}

func TestService_ListAssets_TypeFilter(t *testing.T) {
	t.Parallel()

	assets := &assetRepoMock{
		ListByTypeFunc: func(ctx context.Context, ty domain.AssetType) ([]domain.Asset, error) {
			if ty != domain.AssetTypeSound {
				t.Errorf("got type %q, want sound", ty)
			}
			return []domain.Asset{{Type: ty}}, nil
		},
	}
	svc := testService(deps{assets: assets})

	ty := domain.AssetTypeSound
	got, err := svc.ListAssets(playerCtx(primitive.NewObjectID()), &ty)
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d assets, want 1", len(got))
	}
}

func TestService_ListPublicAssets_Filters(t *testing.T) {
	t.Parallel()

	assets := &assetRepoMock{
		ListPublicFunc: func(ctx context.Context) ([]domain.Asset, error) {
			return []domain.Asset{
				{Type: domain.AssetTypeImage, IsPublic: true},
				{Type: domain.AssetTypeSound, IsPublic: true},
			}, nil
		},
	}
	svc := testService(deps{assets: assets})

	ty := domain.AssetTypeImage
	got, err := svc.ListPublicAssets(context.Background(), &ty)
	if err != nil {
		t.Fatalf("ListPublicAssets: %v", err)
	}
	if len(got) != 1 || got[0].Type != domain.AssetTypeImage {
		t.Fatalf("got %d assets, want only the image", len(got))
	}
}

func TestService_UpdateAsset_UploaderOnly(t *testing.T) {
	t.Parallel()

	ownerID := primitive.NewObjectID()
	a := &domain.Asset{ID: primitive.NewObjectID(), Name: "Old", UploadedBy: ownerID}
	assets := &assetRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
			cp := *a
			return &cp, nil
		},
		UpdateFunc: func(ctx context.Context, updated *domain.Asset) (*domain.Asset, error) {
			if updated.Name != "New" {
				t.Errorf("got name %q", updated.Name)
			}
			return updated, nil
		},
	}
	svc := testService(deps{assets: assets})

	name := "New"
	input := UpdateAssetInput{ID: a.ID, Name: &name}

	if _, err := svc.UpdateAsset(playerCtx(primitive.NewObjectID()), input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if _, err := svc.UpdateAsset(playerCtx(ownerID), input); err != nil {
		t.Fatalf("uploader update: %v", err)
	}
}

func TestService_DeleteAsset_RemovesFile(t *testing.T) {
	t.Parallel()

	ownerID := primitive.NewObjectID()
	a := &domain.Asset{ID: primitive.NewObjectID(), Filename: "abc.png", UploadedBy: ownerID}

	files := &fileStoreMock{
		SaveFunc:   func(filename string, data []byte) (int64, error) { return 0, nil },
		DeleteFunc: func(filename string) error { return nil },
		URLFunc:    func(filename string) string { return filename },
	}
	assets := &assetRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) { return a, nil },
		DeleteFunc:  func(ctx context.Context, id primitive.ObjectID) error { return nil },
	}
	svc := testService(deps{assets: assets, files: files})

	if err := svc.DeleteAsset(playerCtx(ownerID), a.ID); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	calls := files.DeleteCalls()
	if len(calls) != 1 || calls[0].Filename != "abc.png" {
		t.Fatal("expected the stored file to be removed")
	}
}

func TestService_GenerateAsset_Image(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	ai := &aiGeneratorMock{
		GenerateImageFunc: func(ctx context.Context, prompt string) (*provider.GeneratedImage, error) {
			if prompt != "a dark forest at dusk" {
				t.Errorf("got prompt %q", prompt)
			}
			return &provider.GeneratedImage{Data: []byte("png-bytes"), MimeType: "image/png", Width: 1024, Height: 768, Model: "sdxl"}, nil
		},
	}
	assets := &assetRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
			if a.Type != domain.AssetTypeImage {
				t.Errorf("got type %q", a.Type)
			}
			if a.Metadata["width"] != 1024 || a.Metadata["height"] != 768 {
				t.Error("expected dimensions in metadata")
			}
			if a.Metadata["model"] != "sdxl" {
				t.Error("expected model in metadata")
			}
			a.ID = primitive.NewObjectID()
			return a, nil
		},
	}

	svc := testService(deps{assets: assets, ai: ai, cfg: configuredAI()})

	created, err := svc.GenerateAsset(playerCtx(userID), GenerateAssetInput{
		Type:        domain.AssetTypeImage,
		Name:        "Forest",
		Description: "a dark forest at dusk",
	})
	if err != nil {
		t.Fatalf("GenerateAsset: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected created asset to have an ID")
	}
}

func TestService_GenerateAsset_ImageNotConfigured(t *testing.T) {
	t.Parallel()

	svc := testService(deps{})

	_, err := svc.GenerateAsset(playerCtx(primitive.NewObjectID()), GenerateAssetInput{
		Type:        domain.AssetTypeImage,
		Name:        "Forest",
		Description: "a dark forest",
	})
	if !errors.Is(err, domain.ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
}

func TestService_GenerateAsset_TTS(t *testing.T) {
	t.Parallel()

	tts := &speechSynthesizerMock{
		SynthesizeFunc: func(ctx context.Context, text, lang string) (*provider.GeneratedAudio, error) {
			if lang != "fr" {
				t.Errorf("got lang %q, want fr", lang)
			}
			return &provider.GeneratedAudio{Data: []byte("mp3"), MimeType: "audio/mpeg", DurationSeconds: 7, Model: "google-translate-tts"}, nil
		},
	}
	assets := &assetRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
			if a.Type != domain.AssetTypeSound {
				t.Errorf("got type %q", a.Type)
			}
			if a.Metadata["duration"] != 7 {
				t.Error("expected duration in metadata")
			}
			if a.Metadata["kind"] != "tts" {
				t.Error("expected tts kind in metadata")
			}
			a.ID = primitive.NewObjectID()
			return a, nil
		},
	}

	svc := testService(deps{assets: assets, tts: tts})

	_, err := svc.GenerateAsset(playerCtx(primitive.NewObjectID()), GenerateAssetInput{
		Type:        domain.AssetTypeSound,
		Name:        "Narration",
		Description: "Vous vous reveillez dans une foret.",
		SoundKind:   domain.SoundKindTTS,
		Language:    "fr",
	})
	if err != nil {
		t.Fatalf("GenerateAsset: %v", err)
	}
}

func TestService_GenerateAsset_Music(t *testing.T) {
	t.Parallel()

	ai := &aiGeneratorMock{
		GenerateMusicFunc: func(ctx context.Context, prompt string) (*provider.GeneratedAudio, error) {
			return &provider.GeneratedAudio{Data: []byte("wav"), MimeType: "audio/wav", DurationSeconds: 12, Model: "musicgen-small"}, nil
		},
	}
	assets := &assetRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
			if a.Metadata["kind"] != "music" {
				t.Error("expected music kind in metadata")
			}
			if a.Metadata["requested_duration"] != 30 {
				t.Error("expected requested duration in metadata")
			}
			a.ID = primitive.NewObjectID()
			return a, nil
		},
	}

	svc := testService(deps{assets: assets, ai: ai, cfg: configuredAI()})

	_, err := svc.GenerateAsset(playerCtx(primitive.NewObjectID()), GenerateAssetInput{
		Type:        domain.AssetTypeSound,
		Name:        "Ambience",
		Description: "slow ominous cave drones",
		SoundKind:   domain.SoundKindMusic,
		Duration:    30,
	})
	if err != nil {
		t.Fatalf("GenerateAsset: %v", err)
	}
}

func TestService_GenerateAsset_VideoNotImplemented(t *testing.T) {
	t.Parallel()

	svc := testService(deps{cfg: configuredAI()})

	_, err := svc.GenerateAsset(playerCtx(primitive.NewObjectID()), GenerateAssetInput{
		Type:        domain.AssetTypeVideo,
		Name:        "Clip",
		Description: "anything",
	})
	if !errors.Is(err, domain.ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "not implemented") {
		t.Errorf("expected explicit not-implemented message, got: %v", err)
	}
}

func TestService_GenerateAsset_SoundKindRequired(t *testing.T) {
	t.Parallel()

	svc := testService(deps{cfg: configuredAI()})

	_, err := svc.GenerateAsset(playerCtx(primitive.NewObjectID()), GenerateAssetInput{
		Type:        domain.AssetTypeSound,
		Name:        "Mystery",
		Description: "something",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime, name string
		t          domain.AssetType
		want       string
	}{
		{"image/png", "", domain.AssetTypeImage, ".png"},
		{"audio/mpeg", "", domain.AssetTypeSound, ".mp3"},
		{"audio/x-wav", "", domain.AssetTypeSound, ".wav"},
		{"", "photo.JPG", domain.AssetTypeImage, ".JPG"},
		{"", "", domain.AssetTypeSound, ".mp3"},
		{"application/octet-stream", "", domain.AssetType("other"), ".bin"},
	}
	for _, tt := range tests {
		if got := extensionFor(tt.mime, tt.name, tt.t); got != tt.want {
			t.Errorf("extensionFor(%q, %q, %q) = %q, want %q", tt.mime, tt.name, tt.t, got, tt.want)
		}
	}
}
