package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/campushub/portal/internal/app/controllers"
	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/config"
	"github.com/campushub/portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	cfg *config.Config,
	cacheStore *gocache.Cache,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	medicineController *controllers.MedicineController,
	medicineRequestController *controllers.MedicineRequestController,
	parkingController *controllers.ParkingController,
	queueController *controllers.QueueController,
	leaveController *controllers.LeaveController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	// Rate-limited so a credential-stuffing loop cannot hammer the user table.
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Complaint routes
		complaints := authenticated.Group("/complaints")
		{
			complaints.GET("", complaintController.List)

			complaintsStudentProtected := complaints.Group("")
			complaintsStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				complaintsStudentProtected.POST("", complaintController.Create)
			}

			// Wardens and principals both close complaints; the service
			// checks the target scope for principals.
			complaintsStaffProtected := complaints.Group("")
			complaintsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleWarden, models.RolePrincipal))
			{
				complaintsStaffProtected.PUT("/:id/resolve", complaintController.Resolve)
			}
		}

		// Medicine stock routes
		medicines := authenticated.Group("/medicines")
		{
			// Stock listing is read-heavy and identical for every caller,
			// so GET responses are served from the in-memory cache.
			medicines.GET("", middleware.Cache(cacheStore, 30*time.Second), medicineController.List)

			medicinesWardenProtected := medicines.Group("")
			medicinesWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				medicinesWardenProtected.GET("/alerts", medicineController.Alerts)
				medicinesWardenProtected.PUT("", medicineController.Upsert)
				medicinesWardenProtected.DELETE("/:name", medicineController.Delete)
			}
		}

		// Medicine request routes
		medicineRequests := authenticated.Group("/medicine-requests")
		{
			medicineRequests.GET("", medicineRequestController.List)

			medicineRequestsStudentProtected := medicineRequests.Group("")
			medicineRequestsStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				medicineRequestsStudentProtected.POST("", medicineRequestController.Create)
			}

			medicineRequestsWardenProtected := medicineRequests.Group("")
			medicineRequestsWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				medicineRequestsWardenProtected.PUT("/:id/resolve", medicineRequestController.Resolve)
			}
		}

		// Parking routes
		parking := authenticated.Group("/parking")
		{
			parking.GET("", parkingController.List)

			parkingStudentProtected := parking.Group("")
			parkingStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				parkingStudentProtected.POST("", parkingController.Create)
			}

			parkingWardenProtected := parking.Group("")
			parkingWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				parkingWardenProtected.PUT("/:id/resolve", parkingController.Resolve)
			}
		}

		// Queue routes
		queue := authenticated.Group("/queue")
		{
			queue.GET("", queueController.List)

			queueStudentProtected := queue.Group("")
			queueStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				queueStudentProtected.POST("", queueController.Create)
			}

			queueWardenProtected := queue.Group("")
			queueWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				queueWardenProtected.PUT("/:id/resolve", queueController.Resolve)
			}
		}

		// Leave routes
		leaves := authenticated.Group("/leaves")
		{
			leaves.GET("", leaveController.List)

			leavesStudentProtected := leaves.Group("")
			leavesStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				leavesStudentProtected.POST("", leaveController.Create)
				leavesStudentProtected.PUT("/:id/cancel", leaveController.Cancel)
			}

			leavesWardenProtected := leaves.Group("")
			leavesWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				leavesWardenProtected.PUT("/:id/resolve", leaveController.Resolve)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
