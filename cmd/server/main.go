package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/zabka-mb/backend/conf"
	"github.com/zabka-mb/backend/form"
	formhttp "github.com/zabka-mb/backend/form/http"
	"github.com/zabka-mb/backend/http"
	"github.com/zabka-mb/backend/mailer/smtp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := conf.GetConfigFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		slog.Error("unable to load AWS SDK config", "error", err)
		os.Exit(1)
	}

	// One shared DynamoDB client for the process lifetime; every table
	// wrapper below reuses it.
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	repos := map[form.FormType]form.SubmissionRepo{
		form.FormTypeContact: form.NewDynamoDbSubmTable(ddbClient, cfg.ContactTableName),
		form.FormTypeCareer:  form.NewDynamoDbSubmTable(ddbClient, cfg.CareerTableName),
		form.FormTypePartner: form.NewDynamoDbSubmTable(ddbClient, cfg.PartnerTableName),
	}

	sender, err := smtp.New(smtp.Config{
		Host:     cfg.Smtp.Host,
		Port:     cfg.Smtp.Port,
		Username: cfg.Smtp.Username,
		Password: cfg.Smtp.Password,
		Secure:   cfg.Smtp.Secure,
	})
	if err != nil {
		slog.Error("unable to create smtp sender", "error", err)
		os.Exit(1)
	}

	formSrvc := form.NewFormSrvc(form.SrvcParams{
		Repos:         repos,
		Sender:        sender,
		SenderAddress: cfg.Smtp.SenderAddress,
		StaffAddress:  cfg.Smtp.StaffAddress,
	})

	formHandler := formhttp.NewFormHttpHandler(formSrvc)
	httpServer := http.NewHttpServer(formHandler, cfg.AllowedOrigins)

	log.Printf("Starting server on %s", cfg.HttpAddress)
	err = httpServer.Start(cfg.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
