package routes

import (
	"log"
	"strconv"

	_ "car_rental/docs" // This will be auto-generated
	"car_rental/internal/adapter/http/handlers"
	repository2 "car_rental/internal/adapter/persistence/repository"
	"car_rental/internal/config"
	"car_rental/internal/domain/events"
	"car_rental/internal/infrastructure/database"
	"car_rental/internal/infrastructure/notify"
	"car_rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	settings := config.Load()
	logger := logrus.StandardLogger()

	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	claimRepo := repository2.NewClaimDynamoRepository(ddb)
	locationRepo := repository2.NewLocationDynamoRepository(ddb)

	bus := events.NewBus(logger, buildObservers(settings, logger)...)

	fleetUseCase := usecase.NewFleetUseCase(vehicleRepo, bus, settings.DailyRates, logger)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, vehicleRepo, bus, logger)
	claimUseCase := usecase.NewClaimUseCase(claimRepo, vehicleRepo, bus, logger)
	trackingUseCase := usecase.NewTrackingUseCase(vehicleRepo, locationRepo, bus, settings.MaxAllowedDistanceKm, logger)

	vehicleHandler := handlers.NewVehicleHandler(fleetUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	claimHandler := handlers.NewClaimHandler(claimUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFleetRoutes(v1, vehicleHandler, trackingHandler)
	addBookingRoutes(v1, bookingHandler)
	addClaimRoutes(v1, claimHandler)
}

// buildObservers assembles the event fan-out in delivery order: the
// operator channel first, then the persistent alert file, then the
// Kafka audit trail when brokers are configured.
func buildObservers(settings config.Settings, logger logrus.FieldLogger) []events.Observer {
	observers := []events.Observer{notify.NewAdminNotifier(logger)}

	alertLogger, err := notify.NewAlertLogger(settings.AlertLogPath)
	if err != nil {
		logger.Warnf("alert log not available: %v", err)
	} else {
		observers = append(observers, alertLogger)
	}

	if settings.KafkaBrokers != "" && settings.KafkaAuditTopic != "" {
		observers = append(observers, notify.NewKafkaAudit(settings.KafkaBrokers, settings.KafkaAuditTopic))
	}

	return observers
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
