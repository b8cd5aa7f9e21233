package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the catalog API is unreachable
	ErrCatalogUnavailable = errors.New("catalog is unreachable")

	// ErrAuthFailed indicates the catalog rejected the API key
	ErrAuthFailed = errors.New("catalog API key is invalid")

	// ErrItemNotFound indicates the requested catalog item does not exist
	ErrItemNotFound = errors.New("catalog item not found")
)
