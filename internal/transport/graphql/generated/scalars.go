package generated

import (
	"context"
	"fmt"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID scalar methods
func (ec *executionContext) unmarshalInputObjectID(ctx context.Context, obj interface{}) (primitive.ObjectID, error) {
	s, ok := obj.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("ObjectID must be a string")
	}
	return primitive.ObjectIDFromHex(s)
}

func (ec *executionContext) marshalObjectID(ctx context.Context, sel ast.SelectionSet, v primitive.ObjectID) graphql.Marshaler {
	res := graphql.MarshalString(v.Hex())
	return res
}

func (ec *executionContext) _ObjectID(ctx context.Context, sel ast.SelectionSet, v *primitive.ObjectID) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.marshalObjectID(ctx, sel, *v)
}

// DateTime scalar methods
func (ec *executionContext) unmarshalInputDateTime(ctx context.Context, obj interface{}) (time.Time, error) {
	switch v := obj.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

func (ec *executionContext) marshalDateTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	res := graphql.MarshalString(v.Format(time.RFC3339))
	return res
}

func (ec *executionContext) _DateTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.marshalDateTime(ctx, sel, *v)
}
