package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/santluz/Oficina-sub000/docs" // This will be auto-generated
	"github.com/santluz/Oficina-sub000/internal/adapter/http/handlers"
	"github.com/santluz/Oficina-sub000/internal/adapter/persistence/repository"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/database"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase"
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
	store := newKVStore()

	clientRepo := repository.NewClientKVRepository(store)
	vehicleRepo := repository.NewVehicleKVRepository(store)
	serviceRepo := repository.NewServiceKVRepository(store)
	orderRepo := repository.NewServiceOrderKVRepository(store)
	sessionRepo := repository.NewSessionKVRepository(store)

	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo))
	vehicleHandler := handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo))
	serviceHandler := handlers.NewServiceHandler(usecase.NewServiceUseCase(serviceRepo))
	orderHandler := handlers.NewServiceOrderHandler(usecase.NewServiceOrderUseCase(orderRepo))
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(clientRepo, vehicleRepo, serviceRepo, orderRepo))
	sessionHandler := handlers.NewSessionHandler(usecase.NewSessionUseCase(sessionRepo))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, clientHandler, vehicleHandler, serviceHandler, orderHandler, dashboardHandler, sessionHandler)
}

// newKVStore selects the storage backend from STORAGE_DRIVER:
// sqlite (default), dynamodb or memory.
func newKVStore() storage.KVStore {
	driver := strings.ToLower(getenvDefault("STORAGE_DRIVER", "sqlite"))
	switch driver {
	case "dynamodb":
		log.Printf("storage driver: dynamodb")
		return storage.NewDynamoKVStore(database.ConnectDynamoDB())
	case "memory":
		log.Printf("storage driver: memory (nothing will be persisted)")
		return storage.NewMemoryStore()
	default:
		path := getenvDefault("SQLITE_PATH", "oficina.db")
		store, err := storage.NewSQLiteStore(path)
		if err != nil {
			log.Fatalf("Failed to open sqlite storage: %v", err)
		}
		log.Printf("storage driver: sqlite (%s)", path)
		return store
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
