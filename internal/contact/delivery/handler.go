package delivery

import (
	"errors"
	"net/http"

	"contacts-backend/internal/contact/usecase"
	"contacts-backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// CreateContactRequest represents the request body for creating a contact
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreateContact creates a contact owned by the authenticated user
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	contact, err := h.contactUsecase.CreateContact(userID, req.Name, req.Phone, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts returns all contacts owned by the authenticated user
// GET /api/all/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID := c.GetString("userID")

	contacts, err := h.contactUsecase.GetUserContacts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// DeleteContact deletes a contact by id. Both outcomes are reported with 200,
// the body says whether the record existed.
// GET /api/delete/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	err := h.contactUsecase.DeleteContact(c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record Deleted"})
}
