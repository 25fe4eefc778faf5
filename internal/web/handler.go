package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"enrollment/internal/registry"
	"enrollment/internal/report"
)

// Handler exposes the registration operations over HTTP.
type Handler struct {
	svc    *registry.Service
	report *report.Generator
}

// NewHandler wires the handler to the registration service and the
// report generator.
func NewHandler(svc *registry.Service, gen *report.Generator) *Handler {
	return &Handler{svc: svc, report: gen}
}

// SubmitRegistration handles POST /v1/registrations. Validation
// failures answer 400 with a per-field message map and leave the list
// untouched.
func (h *Handler) SubmitRegistration(c *gin.Context) {
	var values registry.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reg, err := h.svc.Submit(values)
	if err != nil {
		var verr *registry.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	registrationsTotal.WithLabelValues(string(reg.Details.Role())).Inc()
	c.JSON(http.StatusCreated, gin.H{
		"registration": reg,
		"summary":      h.svc.Summary(),
	})
}

// ListRegistrations handles GET /v1/registrations, newest first.
func (h *Handler) ListRegistrations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"registrations": h.svc.List(),
		"summary":       h.svc.Summary(),
	})
}

// GetSummary handles GET /v1/summary.
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}

// GetReport handles GET /v1/report. The page opens the response in a
// new tab, which triggers the print dialog on load. An empty list
// answers 204 so the client opens nothing.
func (h *Handler) GetReport(c *gin.Context) {
	produced, err := h.report.Generate(h.svc.List(), &responsePresenter{c: c})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report rendering failed"})
		return
	}
	if !produced {
		c.Status(http.StatusNoContent)
		return
	}
	reportsTotal.Inc()
}

// responsePresenter writes the document straight to the HTTP response.
type responsePresenter struct {
	c *gin.Context
}

// Present implements report.Presenter.
func (p *responsePresenter) Present(doc []byte) error {
	p.c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
	return nil
}
