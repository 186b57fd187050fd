package routes

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/controllers"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/gin-gonic/gin"
)

// Handlers groups every controller mounted under /api
type Handlers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Company      *controllers.CompanyController
	Opportunity  *controllers.OpportunityController
	Application  *controllers.ApplicationController
	Cv           *controllers.CvController
	Message      *controllers.MessageController
	Notification *controllers.NotificationController
	Saved        *controllers.SavedOpportunityController
	Stats        *controllers.StatsController
	Upload       *controllers.UploadController
	Realtime     *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")
	api.Use(authMiddleware.LoadSession())

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
	}

	api.GET("/users/:id", h.User.GetUser)
	api.GET("/companies", h.Company.ListCompanies)
	api.GET("/companies/:id", h.Company.GetCompany)
	api.GET("/opportunities", h.Opportunity.ListOpportunities)
	api.GET("/opportunities/:id", h.Opportunity.GetOpportunity)
	api.GET("/stats", h.Stats.GetStats)
	api.GET("/stats/provinces", h.Stats.GetProvinceStats)
	api.GET("/provinces", h.Stats.ListProvinces)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.PATCH("/users/:id", h.User.UpdateUser)

		authenticated.POST("/companies", h.Company.CreateCompany)
		authenticated.PATCH("/companies/:id", h.Company.UpdateCompany)

		authenticated.POST("/opportunities", h.Opportunity.CreateOpportunity)
		authenticated.PATCH("/opportunities/:id", h.Opportunity.UpdateOpportunity)
		authenticated.PATCH("/opportunities/:id/status",
			authMiddleware.RequireRole(models.UserTypeAdmin),
			h.Opportunity.ModerateOpportunity)

		applications := authenticated.Group("/applications")
		{
			applications.GET("", h.Application.ListApplications)
			applications.GET("/:id", h.Application.GetApplication)
			applications.POST("", h.Application.CreateApplication)
			applications.PATCH("/:id", h.Application.UpdateApplication)
		}

		cvs := authenticated.Group("/cvs")
		{
			cvs.GET("", h.Cv.ListCvs)
			cvs.GET("/:id", h.Cv.GetCv)
			cvs.POST("", h.Cv.CreateCv)
			cvs.PATCH("/:id", h.Cv.UpdateCv)
			cvs.DELETE("/:id", h.Cv.DeleteCv)
		}

		messages := authenticated.Group("/messages")
		{
			messages.GET("/conversations", h.Message.ListConversations)
			messages.GET("/:partnerId", h.Message.GetHistory)
			messages.POST("", h.Message.SendMessage)
			messages.PATCH("/:id/read", h.Message.MarkRead)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.PATCH("/read-all", h.Notification.MarkAllRead)
			notifications.PATCH("/:id/read", h.Notification.MarkRead)
		}

		saved := authenticated.Group("/saved")
		{
			saved.GET("", h.Saved.ListSaved)
			saved.GET("/:opportunityId", h.Saved.IsSaved)
			saved.POST("", h.Saved.Save)
			saved.DELETE("/:opportunityId", h.Saved.Unsave)
		}

		authenticated.POST("/uploads", h.Upload.UploadImage)
		authenticated.GET("/ws", h.Realtime.HandleConnection)
	}
}
