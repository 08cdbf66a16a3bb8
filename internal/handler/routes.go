package handler

import (
	"github.com/dan-tmpa/devops-capstone-project/shared/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the service and account endpoints on r.
func RegisterRoutes(r *gin.Engine, accounts *AccountHandler) {
	r.NoRoute(middleware.NotFound())
	r.HandleMethodNotAllowed = true
	r.NoMethod(middleware.MethodNotAllowed())

	r.GET("/health", Health)
	r.GET("/", Index)

	v := r.Group("/accounts")
	{
		v.POST("", accounts.CreateAccount)
		v.GET("", accounts.ListAccounts)
		v.GET("/:id", accounts.GetAccount)
		v.PUT("/:id", accounts.UpdateAccount)
		v.DELETE("/:id", accounts.DeleteAccount)
	}
}
