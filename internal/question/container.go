package question

import "github.com/eod-app/eod-lambda/internal/store"

type Container struct {
	Handler  *Handler
	Registry Registry
}

func NewContainer(s store.Store) *Container {
	registry := NewRegistry(s)
	handler := NewHandler(registry)

	return &Container{
		Handler:  handler,
		Registry: registry,
	}
}
