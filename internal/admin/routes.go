package admin

import (
	"divorce-lawyers-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, adminService AdminServiceAPI) {
	adminController := &AdminController{AdminService: adminService}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middlewares.AuthMiddleware())
	{
		adminGroup.GET("/lawyers", adminController.ListLawyers)
		adminGroup.POST("/lawyers", adminController.CreateLawyer)
		adminGroup.PUT("/lawyers/:id", adminController.UpdateLawyer)
		adminGroup.DELETE("/lawyers/:id", adminController.DeleteLawyer)
		adminGroup.GET("/lawyers/export", adminController.ExportLawyers)
		adminGroup.GET("/lawyers/:id/tier-overrides", adminController.ListTierOverrides)

		adminGroup.GET("/fallback-lawyers", adminController.ListFallbackLawyers)
		adminGroup.PUT("/fallback-lawyers", adminController.SetFallbackLawyers)

		adminGroup.GET("/law-firms", adminController.ListLawFirms)
		adminGroup.POST("/law-firms", adminController.CreateLawFirm)
		adminGroup.PUT("/law-firms/:id", adminController.UpdateLawFirm)
		adminGroup.DELETE("/law-firms/:id", adminController.DeleteLawFirm)

		adminGroup.POST("/dmas", adminController.CreateDMA)
		adminGroup.PUT("/dmas/:id", adminController.UpdateDMA)
		adminGroup.DELETE("/dmas/:id", adminController.DeleteDMA)
		adminGroup.POST("/dmas/:id/zip-codes", adminController.AssignZipCodes)
		adminGroup.DELETE("/dmas/:id/zip-codes/:zip", adminController.RemoveZipCode)

		adminGroup.GET("/zip-codes", adminController.ListZipCodes)
		adminGroup.POST("/zip-codes", adminController.CreateZipCode)
		adminGroup.DELETE("/zip-codes/:id", adminController.DeleteZipCode)

		adminGroup.POST("/subscription-types", adminController.CreateSubscriptionType)
		adminGroup.PUT("/subscription-types/:id", adminController.UpdateSubscriptionType)
		adminGroup.DELETE("/subscription-types/:id", adminController.DeleteSubscriptionType)

		adminGroup.GET("/subscription-limits", adminController.ListSubscriptionLimits)
		adminGroup.POST("/subscription-limits", adminController.UpsertSubscriptionLimit)
		adminGroup.DELETE("/subscription-limits/:id", adminController.DeleteSubscriptionLimit)
		adminGroup.GET("/subscription-limits/check", adminController.CheckLimits)

		adminGroup.POST("/tier-overrides", adminController.UpsertTierOverride)
		adminGroup.DELETE("/tier-overrides/:id", adminController.DeleteTierOverride)

		adminGroup.GET("/subscription-plans", adminController.ListPlans)
		adminGroup.POST("/subscription-plans", adminController.CreatePlan)
		adminGroup.PUT("/subscription-plans/:id", adminController.UpdatePlan)
		adminGroup.DELETE("/subscription-plans/:id", adminController.DeletePlan)
		adminGroup.PUT("/subscription-plans/:id/features", adminController.SetPlanFeatures)
		adminGroup.POST("/subscription-plans/:id/dma-overrides", adminController.UpsertPlanDMAOverride)
		adminGroup.DELETE("/plan-dma-overrides/:id", adminController.DeletePlanDMAOverride)

		adminGroup.GET("/contact-submissions", adminController.ListContactSubmissions)
		adminGroup.PUT("/contact-submissions/:id/status", adminController.UpdateContactStatus)
	}
}
