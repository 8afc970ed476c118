package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/santluz/Oficina-sub000/internal/adapter/http/handlers"
)

const (
	PathClients   = "/clients"
	PathVehicles  = "/vehicles"
	PathServices  = "/services"
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
	PathSession   = "/session"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	serviceHandler *handlers.ServiceHandler,
	orderHandler *handlers.ServiceOrderHandler,
	dashboardHandler *handlers.DashboardHandler,
	sessionHandler *handlers.SessionHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PATCH("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)

	session := rg.Group(PathSession)
	{
		session.POST("/login", sessionHandler.Login)
		session.DELETE("/logout", sessionHandler.Logout)
		session.GET("", sessionHandler.GetSession)
	}
}
