package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService) {
	authController := &AuthController{AuthService: authService}

	r.POST("/api/admin/login", authController.Login)
	r.GET("/api/admin/me", authController.Me)
}
