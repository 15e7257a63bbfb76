package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Hub    *services.RealtimeHub
	Push   *services.PushService
	Scans  *services.ScanService
	Gemini *services.GeminiService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/mfa", controllers.SetMFA)
		user.POST("/disable", controllers.DisableAccount)
		user.GET("/dashboard", controllers.GetDashboard)
		user.GET("/alerts", controllers.ListAlerts)
	}

	allergens := r.Group("/allergens")
	allergens.Use(middlewares.AuthMiddleware())
	{
		allergens.GET("", controllers.ListAllergens)
		allergens.POST("", controllers.AddAllergen)
		allergens.DELETE("/:id", controllers.DeleteAllergen)
		allergens.GET("/info", controllers.AllergenInfo(deps.Gemini))
		allergens.GET("/synonyms", controllers.SuggestSynonyms(deps.Gemini))
		allergens.POST("/catalog/reload", controllers.ReloadCatalog)
	}

	scanCtl := controllers.NewScanController(deps.Scans)
	scan := r.Group("/scan")
	scan.Use(middlewares.AuthMiddleware())
	{
		scan.POST("/image", scanCtl.ScanImage)
		scan.POST("/text", scanCtl.ScanText)
		scan.GET("/history", scanCtl.History)
	}

	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.POST("/safe", controllers.SaveSafeProduct)
		products.GET("/safe", controllers.ListSafeProducts)
		products.DELETE("/safe/:id", controllers.DeleteSafeProduct)
		products.POST("/allergic", controllers.SaveAllergicProduct)
		products.GET("/allergic", controllers.ListAllergicProducts)
		products.DELETE("/allergic/:id", controllers.DeleteAllergicProduct)
		products.GET("/potential-allergens", controllers.PotentialAllergens)
		products.PUT("/ingredients/rename", controllers.RenameIngredient)
		products.PUT("/ingredients/remove", controllers.RemoveIngredient)
	}

	meds := r.Group("/medications")
	meds.Use(middlewares.AuthMiddleware())
	{
		meds.POST("", controllers.CreateMedication)
		meds.GET("", controllers.ListMedications)
		meds.PUT("/:id", controllers.UpdateMedication)
		meds.DELETE("/:id", controllers.DeleteMedication)
		meds.POST("/:id/logs", controllers.LogDose)
		meds.GET("/:id/logs", controllers.ListDoseLogs)
		meds.GET("/today", controllers.TodaysDoses)
	}

	emergency := r.Group("/emergency")
	emergency.Use(middlewares.AuthMiddleware())
	{
		emergency.POST("/contacts", controllers.AddEmergencyContact)
		emergency.GET("/contacts", controllers.ListEmergencyContacts)
		emergency.DELETE("/contacts/:id", controllers.DeleteEmergencyContact)
		emergency.POST("/card", controllers.GenerateEmergencyCard)
		emergency.GET("/card/:id", controllers.GetEmergencyCard)
	}

	forum := r.Group("/forum")
	forum.Use(middlewares.AuthMiddleware())
	{
		forum.GET("/posts", controllers.ListForumPosts)
		forum.POST("/posts", controllers.CreateForumPost)
		forum.GET("/posts/:id", controllers.GetForumPost)
		forum.POST("/posts/:id/comments", controllers.AddForumComment)
		forum.POST("/posts/:id/close", controllers.CloseForumPost)
		forum.POST("/reports", controllers.ReportContent)
	}

	deviceCtl := controllers.NewDeviceController(deps.Push)
	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtl.RegisterDevice)
		devices.PUT("/notifications", deviceCtl.SetNotifications)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", controllers.AlertsWS(deps.Hub))
	}

	return r
}
