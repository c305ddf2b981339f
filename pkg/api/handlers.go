package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"buwana-tours/pkg/models"
	"buwana-tours/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	intakeService services.IntakeService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(intakeService services.IntakeService) *Handlers {
	return &Handlers{
		intakeService: intakeService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	if err := h.intakeService.Healthy(c.Request.Context()); err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// SubmitInquiry processes inquiry form submissions from the landing page
func (h *Handlers) SubmitInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if !h.decodeBody(c, &inquiry) {
		return
	}

	if err := h.intakeService.SaveInquiry(c.Request.Context(), &inquiry); err != nil {
		h.submissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Inquiry saved!"})
}

// SubmitContact processes contact form submissions from the contact page
func (h *Handlers) SubmitContact(c *gin.Context) {
	var contact models.Contact
	if !h.decodeBody(c, &contact) {
		return
	}

	if err := h.intakeService.SaveContact(c.Request.Context(), &contact); err != nil {
		h.submissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Contact saved!"})
}

// decodeBody reads and unmarshals the request body into dst. It writes the
// 400 response itself and returns false when the body is unusable.
func (h *Handlers) decodeBody(c *gin.Context, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request"})
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return false
	}

	return true
}

// submissionError maps service failures onto responses: validation failures
// carry their message in a 400, storage failures become a generic 500.
func (h *Handlers) submissionError(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	log.Printf("Error persisting submission: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save submission"})
}
