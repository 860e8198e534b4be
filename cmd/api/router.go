package api

import (
	"net/http"

	"contacts-backend/internal/auth/delivery"
	"contacts-backend/internal/auth/token"
	authUsecase "contacts-backend/internal/auth/usecase"
	contactDelivery "contacts-backend/internal/contact/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, tokens *token.Service, contactHandler *contactDelivery.ContactHandler) {
	authHandler := delivery.NewAuthHandler(authUsecase, tokens)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes (public)
		api.POST("/users", authHandler.Register)
		api.GET("/users/:id", authHandler.GetUser)

		// TODO: require auth and an ownership check before deleting
		api.GET("/delete/:id", contactHandler.DeleteContact)

		// Protected routes
		protected := api.Group("")
		protected.Use(delivery.AuthMiddleware(authUsecase))
		{
			protected.GET("/token", authHandler.Token)
			protected.GET("/resource", authHandler.Resource)
			protected.POST("/contacts", contactHandler.CreateContact)
			protected.GET("/all/contacts", contactHandler.ListContacts)
		}
	}
}
