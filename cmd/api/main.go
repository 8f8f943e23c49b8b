package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/eod-app/eod-lambda/internal/container"
	"github.com/eod-app/eod-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		AuthHandler:         c.AuthHandler,
		QuestionHandler:     c.QuestionContainer.Handler,
		ResponseHandler:     c.ResponseContainer.Handler,
		TrendHandler:        c.TrendContainer.Handler,
		ChallengeHandler:    c.ChallengeContainer.Handler,
		EntitlementHandler:  c.EntitlementContainer.Handler,
		NotificationHandler: c.NotificationContainer.Handler,
		EntitlementService:  c.EntitlementContainer.Service,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("Listening")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
