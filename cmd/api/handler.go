package api

import (
	"contacts-backend/internal/auth/token"
	authUsecasePkg "contacts-backend/internal/auth/usecase"
	contactDelivery "contacts-backend/internal/contact/delivery"
	contactUsecasePkg "contacts-backend/internal/contact/usecase"
	"contacts-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecasePkg.AuthUsecase
	contactHandler *contactDelivery.ContactHandler
	tokens         *token.Service
	config         *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, contactUc contactUsecasePkg.ContactUsecase, tokens *token.Service, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		contactHandler: contactDelivery.NewContactHandler(contactUc),
		tokens:         tokens,
		config:         cfg,
	}
}

// Engine builds the configured gin engine; split out so tests can drive it
// through httptest without binding a port.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(h.config.CORSOrigins) == 1 && h.config.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.config.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	SetupRoutes(r, h.authUsecase, h.tokens, h.contactHandler)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
