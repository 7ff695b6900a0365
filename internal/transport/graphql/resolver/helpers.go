package resolver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/auth"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/dataloader"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/model"
)

// authPayload converts a service auth result to the GraphQL payload.
func authPayload(res *auth.AuthResult) *model.AuthPayload {
	return &model.AuthPayload{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         res.User,
	}
}

// loadAsset resolves an optional asset reference through the DataLoader.
// A nil id or a dangling reference both yield a null field.
func (r *Resolver) loadAsset(ctx context.Context, id *primitive.ObjectID) (*domain.Asset, error) {
	if id == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).AssetByID.Load(ctx, *id)()
}

func boolVal(b *bool) bool {
	return b != nil && *b
}

func intVal(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
