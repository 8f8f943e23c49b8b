package response

import (
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/store"
)

type Container struct {
	Handler *Handler
	Ledger  Ledger
	Service CheckInService
}

func NewContainer(s store.Store, registry question.Registry) *Container {
	ledger := NewLedger(s)
	service := NewCheckInService(ledger, registry)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Ledger:  ledger,
		Service: service,
	}
}
