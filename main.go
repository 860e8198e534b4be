package main

import (
	"log"

	api "contacts-backend/cmd/api"
	authdomain "contacts-backend/internal/auth/domain"
	authRepo "contacts-backend/internal/auth/repository"
	"contacts-backend/internal/auth/token"
	authUsecase "contacts-backend/internal/auth/usecase"
	contactdomain "contacts-backend/internal/contact/domain"
	contactRepo "contacts-backend/internal/contact/repository"
	contactUsecase "contacts-backend/internal/contact/usecase"
	"contacts-backend/pkg/config"
	"contacts-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &contactdomain.Contact{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize token service with process-wide signing configuration
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	contactRepository := contactRepo.NewGormContactRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, contactUsecaseInstance, tokens, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
