package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/controllers"
	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	branchAdminController *controllers.BranchAdminController,
	branchController *controllers.BranchController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	guardianController *controllers.GuardianController,
	authMiddleware *middleware.AuthMiddleware,
	authRateLimiter *middleware.RateLimiter,
	storagePath string,
) {
	// Uploaded photos are served straight from disk, path mirrors the role
	// subdirectories used by the storage layer.
	router.Static("/assets/images", storagePath)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	// --- Public auth routes (rate limited) ---
	auth := api.Group("/auth")
	auth.Use(authRateLimiter.Limit())
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register-super-admin", authController.RegisterSuperAdmin)
		auth.POST("/register-branch-admin", authController.RegisterBranchAdmin)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)

		// Switching accounts is a super admin capability.
		switchSession := auth.Group("")
		switchSession.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleSuperAdmin))
		{
			switchSession.POST("/switch-session", authController.SwitchSession)
		}
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		branchAdmins := authenticated.Group("/branch-admin")
		{
			branchAdmins.GET("/get-all-branch-admins", branchAdminController.GetAll)
			branchAdmins.GET("/:id", branchAdminController.GetByID)
			branchAdmins.PUT("/:id", branchAdminController.Update)
			branchAdmins.DELETE("/:id", branchAdminController.Delete)
		}

		branches := authenticated.Group("/branch")
		{
			branches.POST("/create", branchController.Create)
			branches.GET("/get-all", branchController.GetAll)
			branches.GET("/get/:id", branchController.GetByID)
			branches.PUT("/update/:id", branchController.Update)
			branches.PUT("/assign/:id", branchController.Assign)
			branches.DELETE("/delete/:id", branchController.Delete)
			branches.GET("/:id/settings", branchController.GetSettings)
			branches.PUT("/:id/settings", branchController.UpdateSettings)
		}

		staff := authenticated.Group("/staff")
		{
			staff.POST("/create", staffController.Create)
			staff.GET("/get-all", staffController.GetAll)
			staff.GET("/get-by-id/:id", staffController.GetByID)
			staff.PUT("/update/:id", staffController.Update)
			staff.DELETE("/delete/:id", staffController.Delete)
		}

		students := authenticated.Group("/student")
		{
			students.POST("/create", studentController.Create)
			students.GET("/get-all", studentController.GetAll)
			students.GET("/get-by-id/:id", studentController.GetByID)
			students.PUT("/update/:id", studentController.Update)
			students.DELETE("/delete/:id", studentController.Delete)
		}

		guardians := authenticated.Group("/guardian")
		{
			guardians.POST("/create", guardianController.Create)
			guardians.GET("/get-all", guardianController.GetAll)
			guardians.GET("/get-by-id/:id", guardianController.GetByID)
			guardians.PUT("/update/:id", guardianController.Update)
			guardians.DELETE("/delete/:id", guardianController.Delete)
		}
	}
}
