package handler

import (
	"cashback-catalog-service/internal/adapter/http/dto"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/pkg/apperror"
	"cashback-catalog-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant catalog endpoints.
type MerchantHandler struct {
	catalogSvc ports.CatalogService
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(catalogSvc ports.CatalogService) *MerchantHandler {
	return &MerchantHandler{catalogSvc: catalogSvc}
}

// List returns every merchant, sorted by name.
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := h.catalogSvc.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, merchants)
}

// Create inserts a new merchant from a submitted form.
func (h *MerchantHandler) Create(c *gin.Context) {
	var form dto.MerchantForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&form)

	id, err := h.catalogSvc.AddMerchant(c.Request.Context(), merchantInput(form))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MerchantCreatedResponse{MerchantID: id})
}

// Update replaces the merchant record with the submitted form.
func (h *MerchantHandler) Update(c *gin.Context) {
	var form dto.MerchantForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&form)

	if err := h.catalogSvc.UpdateMerchant(c.Request.Context(), c.Param("id"), merchantInput(form)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "merchant updated"})
}

// Delete removes the merchant. Offers pointing at it are left in place
// and drop out of the rendered view until they are reassigned.
func (h *MerchantHandler) Delete(c *gin.Context) {
	if err := h.catalogSvc.DeleteMerchant(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "merchant deleted"})
}

func merchantInput(form dto.MerchantForm) ports.MerchantInput {
	return ports.MerchantInput{
		Name:             form.MerchantName,
		BannerImageURL:   form.BannerImageURL,
		MerchantImageURL: form.MerchantImageURL,
		MerchantDays:     form.MerchantDays,
		AboutText:        form.AboutText,
	}
}
