package routes

import (
	"github.com/ottchakarov/FrontDash/configs"
	"github.com/ottchakarov/FrontDash/controllers"
	"github.com/ottchakarov/FrontDash/middlewares"
	"github.com/ottchakarov/FrontDash/repository"
	"github.com/ottchakarov/FrontDash/services"
	"github.com/ottchakarov/FrontDash/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine and returns the order-tracking hub so main can run it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.SugaredLogger) *ws.TrackHub {
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	withdrawRepo := repository.NewWithdrawRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	hoursRepo := repository.NewHoursRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	orderSvc := services.NewOrderService(db, orderRepo, restRepo, driverRepo, log)
	withdrawSvc := services.NewWithdrawalService(db, withdrawRepo, restRepo, log)
	approvalSvc := services.NewApprovalService(approvalRepo, restRepo, log)
	hoursSvc := services.NewHoursService(db, hoursRepo, restRepo, log)
	driverSvc := services.NewDriverService(driverRepo, log)
	staffSvc := services.NewStaffService(staffRepo, log)
	restSvc := services.NewRestaurantService(restRepo, hoursRepo, log)
	menuSvc := services.NewMenuService(menuRepo, restRepo, log)
	statsSvc := services.NewStatisticsService(restRepo, menuRepo, withdrawSvc)
	authSvc := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)

	hub := ws.NewTrackHub(orderSvc, log)
	orderSvc.Notify = hub.Publish

	authCtl := controllers.NewAuthController(authSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	withdrawCtl := controllers.NewWithdrawalController(withdrawSvc)
	approvalCtl := controllers.NewApprovalController(approvalSvc)
	restCtl := controllers.NewRestaurantController(restSvc, hoursSvc, statsSvc)
	menuCtl := controllers.NewMenuController(menuSvc)
	driverCtl := controllers.NewDriverController(driverSvc)
	staffCtl := controllers.NewStaffController(staffSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", authCtl.Login)

	// customer-facing, no auth
	r.GET("/restaurants", restCtl.List)
	r.GET("/restaurants/:id", restCtl.Detail)
	r.GET("/restaurants/:id/hours", restCtl.GetHours)
	r.GET("/restaurants/:id/menu", menuCtl.List)
	r.POST("/orders", orderCtl.Create)
	r.GET("/orders/:id", orderCtl.Detail)
	r.GET("/orders/:id/summary", orderCtl.Summary)

	// restaurant owner surface
	owner := r.Group("/")
	owner.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		owner.PUT("/restaurants/:id/hours", restCtl.UpdateHours)
		owner.PUT("/restaurants/:id/contact", restCtl.UpdateContact)
		owner.PUT("/restaurants/:id/address", restCtl.UpdateAddress)
		owner.PUT("/restaurants/:id/profile-picture", restCtl.UpdateProfilePicture)
		owner.DELETE("/restaurants/:id/profile-picture", restCtl.RemoveProfilePicture)
		owner.POST("/restaurants/:id/menu", menuCtl.Create)
		owner.PATCH("/menu/:id", menuCtl.Update)
		owner.PATCH("/menu/:id/availability", menuCtl.SetAvailability)
		owner.DELETE("/menu/:id", menuCtl.Delete)

		owner.GET("/restaurants/:id/withdrawal", withdrawCtl.Detail)
		owner.GET("/restaurants/:id/withdrawal/status", withdrawCtl.Status)
		owner.POST("/restaurants/:id/withdrawal", withdrawCtl.Request)
		owner.DELETE("/restaurants/:id/withdrawal", withdrawCtl.Cancel)

		owner.POST("/approval/request", approvalCtl.Request)
	}

	// staff surface
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/orders/pending", orderCtl.Pending)
		staff.PATCH("/orders/:id/assign", orderCtl.Assign)
		staff.PATCH("/orders/:id/deliver", orderCtl.Deliver)
	}

	// admin surface
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/withdrawals/pending", withdrawCtl.Pending)
		admin.PATCH("/withdrawals/:id/approve", withdrawCtl.Approve)
		admin.PATCH("/withdrawals/:id/deny", withdrawCtl.Deny)

		admin.GET("/approvals/pending", approvalCtl.Pending)
		admin.POST("/approvals/decide", approvalCtl.Decide)

		admin.POST("/drivers", driverCtl.Create)
		admin.PATCH("/drivers/:id/inactivate", driverCtl.Inactivate)

		admin.POST("/staff", staffCtl.Create)
		admin.PATCH("/staff/:id/inactivate", staffCtl.Inactivate)

		admin.DELETE("/restaurants/:id", restCtl.Delete)
		admin.GET("/restaurants/:id/statistics", restCtl.Statistics)
	}

	// live order tracking
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return hub
}
