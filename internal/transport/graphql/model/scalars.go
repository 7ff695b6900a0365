package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarshalObjectID marshals a Mongo ObjectID to a GraphQL hex string.
func MarshalObjectID(id primitive.ObjectID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+id.Hex()+`"`)
	})
}

// UnmarshalObjectID unmarshals a GraphQL hex string to a Mongo ObjectID.
func UnmarshalObjectID(v interface{}) (primitive.ObjectID, error) {
	switch v := v.(type) {
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("ObjectID must be a 24-character hex string")
		}
		return id, nil
	default:
		return primitive.NilObjectID, fmt.Errorf("ObjectID must be a string")
	}
}

// DateTime wraps time.Time for GraphQL scalar marshaling.
type DateTime time.Time

func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+t.Format(time.RFC3339)+`"`)
	})
}

func UnmarshalDateTime(v interface{}) (time.Time, error) {
	switch v := v.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

// MarshalJSON marshals a free-form document to GraphQL JSON.
func MarshalJSON(m map[string]any) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		data, err := json.Marshal(m)
		if err != nil {
			io.WriteString(w, "null")
			return
		}
		w.Write(data)
	})
}

// UnmarshalJSON unmarshals a GraphQL JSON value to a free-form document.
func UnmarshalJSON(v interface{}) (map[string]any, error) {
	switch v := v.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("JSON must be an object")
	}
}
