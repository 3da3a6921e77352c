package main

import (
	"fmt"
	"os"
	"time"

	"garments/cmd"
	_ "garments/docs"
	"garments/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

//	@title			Garments Cart & Checkout API
//	@version		1.0
//	@description	Cart and checkout orchestration for the garments storefront.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	if err := postgres.CreateDBIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	dsn := postgres.ConnectionString(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	gormDB, err := postgres.OpenGormDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	sessionMaxAge := 30 * time.Minute
	if raw := goDotEnvVariable("SESSION_MAX_AGE"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid SESSION_MAX_AGE: %v", err)
		}
		sessionMaxAge = parsed
	}

	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		SessionMaxAge: sessionMaxAge,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
