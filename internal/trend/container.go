package trend

import (
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(registry question.Registry, ledger response.Ledger) *Container {
	service := NewService(registry, ledger)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
