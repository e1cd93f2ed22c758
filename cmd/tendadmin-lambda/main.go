// Command tendadmin-lambda serves the admin operations as an AWS Lambda
// behind an API Gateway proxy integration. Each invocation opens its own
// MongoDB client and disconnects it before returning.
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dalemusser/tendadmin/internal/app/bootstrap"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	_, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := bootstrap.ValidateConfig(nil, appCfg, logger); err != nil {
		logger.Fatal("validate config", zap.Error(err))
	}
	bootstrap.ApplyTimeouts(logger)

	conn := bootstrap.PerInvocationConnector{Config: appCfg, Log: logger}
	d, err := bootstrap.BuildDispatcher(appCfg, conn, nil, logger)
	if err != nil {
		logger.Fatal("build dispatcher", zap.Error(err))
	}

	lambda.Start(d.HandleAPIGateway)
}
