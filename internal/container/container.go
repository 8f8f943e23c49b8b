package container

import (
	"context"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/eod-app/eod-lambda/internal/auth"
	"github.com/eod-app/eod-lambda/internal/challenge"
	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/entitlement"
	"github.com/eod-app/eod-lambda/internal/notification"
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/store"
	"github.com/eod-app/eod-lambda/internal/trend"
)

type Container struct {
	Store store.Store

	AuthHandler           *auth.Handler
	QuestionContainer     *question.Container
	ResponseContainer     *response.Container
	TrendContainer        *trend.Container
	ChallengeContainer    *challenge.Container
	EntitlementContainer  *entitlement.Container
	NotificationContainer *notification.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	var kv store.Store
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		if err := config.Connect(ctx, dsn); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		pg, err := store.NewPostgres(config.DB)
		if err != nil {
			log.Fatalf("failed to migrate store: %v", err)
		}
		kv = pg
	} else {
		logrus.Warn("DATABASE_DSN not set, using in-memory store")
		kv = store.NewMemory()
	}

	questionContainer := question.NewContainer(kv)
	responseContainer := response.NewContainer(kv, questionContainer.Registry)
	trendContainer := trend.NewContainer(questionContainer.Registry, responseContainer.Ledger)
	challengeContainer := challenge.NewContainer(kv, questionContainer.Registry, responseContainer.Ledger)
	entitlementContainer := entitlement.NewContainer(kv)

	notificationContainer, err := notification.NewContainer(kv)
	if err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}

	if err := entitlementContainer.Service.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize entitlement tracking: %v", err)
	}
	if err := notificationContainer.Bootstrap(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to arm reminder schedule")
	}

	return &Container{
		Store:                 kv,
		AuthHandler:           auth.NewHandler(),
		QuestionContainer:     questionContainer,
		ResponseContainer:     responseContainer,
		TrendContainer:        trendContainer,
		ChallengeContainer:    challengeContainer,
		EntitlementContainer:  entitlementContainer,
		NotificationContainer: notificationContainer,
	}
}
