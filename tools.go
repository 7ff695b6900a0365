//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used for code generation:
// - github.com/99designs/gqlgen (GraphQL server code)
// - github.com/matryer/moq (interface mocks for tests)
