package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/controllers"
	"github.com/beartshare/admin-api/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; every
// mutating route sits behind the admin session gate.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	blogController *controllers.BlogController,
	templateController *controllers.TemplateController,
	dispatchController *controllers.DispatchController,
	uploadController *controllers.UploadController,
	sessionGate *middleware.SessionMiddleware,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)
	api.GET("/auth-check", authController.AuthCheck)

	// --- Public read routes ---
	api.GET("/users", userController.ListUsers)
	api.GET("/users/:id", userController.GetUser)
	api.GET("/users/:id/points", userController.GetUserPoints)
	api.GET("/users/:id/points/summary", userController.GetUserPointsSummary)
	api.GET("/users/:id/cash-outs", userController.GetUserCashOuts)

	api.GET("/blog-categories", blogController.ListCategories)
	api.GET("/blog-categories/:id", blogController.GetCategory)
	api.GET("/blog-posts", blogController.ListPosts)
	api.GET("/blog-posts/:id", blogController.GetPost)

	api.GET("/email-templates", templateController.ListTemplates)
	api.GET("/email-templates/:id", templateController.GetTemplate)

	// --- Admin-gated routes ---
	admin := api.Group("")
	admin.Use(sessionGate.RequireAdmin())
	{
		admin.POST("/users/:id/points", userController.AwardPoints)

		admin.POST("/blog-categories", blogController.CreateCategory)
		admin.PUT("/blog-categories/:id", blogController.UpdateCategory)
		admin.DELETE("/blog-categories/:id", blogController.DeleteCategory)

		admin.POST("/blog-posts", blogController.CreatePost)
		admin.PUT("/blog-posts/:id", blogController.UpdatePost)
		admin.DELETE("/blog-posts/:id", blogController.DeletePost)

		admin.POST("/email-templates", templateController.CreateTemplate)
		admin.PUT("/email-templates/:id", templateController.UpdateTemplate)
		admin.DELETE("/email-templates/:id", templateController.DeleteTemplate)

		admin.POST("/send-email", dispatchController.SendEmail)
		admin.POST("/send-sms", dispatchController.SendSMS)

		admin.POST("/upload-image", uploadController.UploadImage)
		admin.POST("/upload-image-url", uploadController.UploadImageFromURL)
	}
}
