package challenge

import (
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/store"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(s store.Store, registry question.Registry, ledger response.Ledger) *Container {
	service := NewService(s, registry, ledger)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
