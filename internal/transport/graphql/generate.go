// Package graphql provides the GraphQL transport layer for the StoryForge
// backend. It defines the GraphQL schema, resolvers, DataLoaders, and error
// handling for the interactive-story application. Scalar types (ObjectID,
// DateTime, JSON) and the executable schema are generated via gqlgen from the
// schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
