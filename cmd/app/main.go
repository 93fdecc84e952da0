package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := cmd.RunMigrations(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateListOverdueShipmentsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateShipment:  app.CreateCreateShipmentCommandHandler(),
		AppendStatus:    app.CreateAppendStatusCommandHandler(),
		CreateReturn:    app.CreateCreateReturnCommandHandler(),
		AdvanceReturn:   app.CreateAdvanceReturnCommandHandler(),
		CreateMethod:    app.CreateCreateShippingMethodCommandHandler(),
		CreateWarehouse: app.CreateCreateWarehouseCommandHandler(),
		CreateEmployee:  app.CreateCreateEmployeeCommandHandler(),
		RecordMovement:  app.CreateRecordMovementCommandHandler(),

		GetShipment:        app.CreateGetShipmentQueryHandler(),
		GetShipmentHistory: app.CreateGetShipmentHistoryQueryHandler(),
		GetCurrentStatus:   app.CreateGetCurrentStatusQueryHandler(),
		GetReturn:          app.CreateGetReturnQueryHandler(),
		ListShipments:      app.CreateListShipmentsQueryHandler(),
		ListOverdue:        app.CreateListOverdueShipmentsQueryHandler(),
		ListReturns:        app.CreateListReturnsQueryHandler(),
		ListMethods:        app.CreateListShippingMethodsQueryHandler(),
		ListWarehouses:     app.CreateListWarehousesQueryHandler(),
		ListEmployees:      app.CreateListEmployeesQueryHandler(),
		ListMovements:      app.CreateListMovementsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
