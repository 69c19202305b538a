// File: marketly/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Reviews *ReviewHandler
	Users   *UserHandler
}
