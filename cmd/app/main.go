package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/HomamAlyaghshi/employee-food-accounting/cmd"
	apphttp "github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/in/http"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/postgres/blobstore"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err := app.OrderStore().Hydrate(context.Background()); err != nil {
		log.Fatalf("Failed to hydrate order collection: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		BackupSchedule: goDotEnvVariable("BACKUP_SCHEDULE"),
		Roster:         cmd.ParseRoster(goDotEnvVariable("EMPLOYEES")),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&blobstore.BlobDTO{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := apphttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateUpdateLineItemCommandHandler(),
		app.CreateDeleteLineItemCommandHandler(),
		app.CreateClearOrdersCommandHandler(),
		app.CreateImportOrdersCommandHandler(),
		app.CreateRestoreBackupCommandHandler(),
		app.CreateDeleteBackupCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetLineItemsQueryHandler(),
		app.CreateGetEmployeeTotalsQueryHandler(),
		app.CreateGetEmployeeStatsQueryHandler(),
		app.CreateListEmployeesQueryHandler(),
		app.CreateListBackupsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
