package phone

import (
	"net/http"

	"phonefmt/internal/phonenumber"
	"phonefmt/platform/httpkit"
	"phonefmt/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler exposes the phone endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Parse handles POST /api/v1/phone/parse
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.Parse(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Format handles POST /api/v1/phone/format
func (h *Handler) Format(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.Format(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListCountries handles GET /api/v1/phone/countries
func (h *Handler) ListCountries(c *gin.Context) {
	httpkit.OK(c, h.svc.Countries())
}

// Normalize handles GET /api/v1/phone/normalize?q=...&region=...
func (h *Handler) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}
	httpkit.OK(c, h.svc.Normalize(req))
}

// GetTemplates handles GET /api/v1/admin/phone/templates
func (h *Handler) GetTemplates(c *gin.Context) {
	httpkit.OK(c, h.svc.Table())
}

// ReplaceTemplates handles PUT /api/v1/admin/phone/templates
func (h *Handler) ReplaceTemplates(c *gin.Context) {
	identity, ok := httpkit.MustGetIdentity(c)
	if !ok {
		return
	}

	var req phonenumber.TableFile
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ReplaceTable(c.Request.Context(), req, identity.UserID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
