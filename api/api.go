// Package api embeds the OpenAPI document of the mocked endpoint.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed openapi.yml
var document []byte

// Document returns the raw embedded YAML.
func Document() []byte {
	return document
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// Route resolves the operation declared for method and the literal path.
func Route(doc *openapi3.T, method, path string) (*routers.Route, error) {
	item := doc.Paths.Value(path)
	if item == nil {
		return nil, fmt.Errorf("path %s not declared", path)
	}
	op := item.GetOperation(method)
	if op == nil {
		return nil, fmt.Errorf("operation %s %s not declared", method, path)
	}
	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: op,
	}, nil
}

// UsersRoute is the GET operation of the users listing.
func UsersRoute(doc *openapi3.T) (*routers.Route, error) {
	return Route(doc, http.MethodGet, "/testcompany/v1/meta/users/")
}
