package main

import (
	"log"

	"xlfilter/adapters/excel"
	"xlfilter/app"
	"xlfilter/internal"
	"xlfilter/internal/config"
	"xlfilter/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Log.Level))
	defer logger.Sync()

	reader := excel.NewDataReader(appConfig.Excel, logger)
	writer := excel.NewWriter(appConfig.Excel, logger)
	service := app.NewFilterService(*appConfig, reader, writer, logger)

	server := ui.NewServer(*appConfig, service, logger)

	logger.Info("Recognized headers: %s", appConfig.Headers)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
