package entitlement

import (
	"os"

	"github.com/eod-app/eod-lambda/internal/store"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(s store.Store) *Container {
	var provider Provider
	if baseURL := os.Getenv("BILLING_API_URL"); baseURL != "" {
		provider = NewHTTPProvider(baseURL, os.Getenv("BILLING_API_KEY"))
	}

	service := NewService(s, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
