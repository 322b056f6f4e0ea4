package handler

import (
	"cashback-catalog-service/internal/adapter/http/dto"
	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/pkg/apperror"
	"cashback-catalog-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles offer catalog endpoints.
type OfferHandler struct {
	querySvc   ports.CatalogQueryService
	catalogSvc ports.CatalogService
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(querySvc ports.CatalogQueryService, catalogSvc ports.CatalogService) *OfferHandler {
	return &OfferHandler{querySvc: querySvc, catalogSvc: catalogSvc}
}

// List renders the offer view: offers joined with their merchants, with
// the display fields derived. Staging offers are hidden unless
// include_staging=true.
func (h *OfferHandler) List(c *gin.Context) {
	filter := ports.OfferFilter{
		MerchantID:     c.Query("merchant_id"),
		OfferID:        c.Query("offer_id"),
		IncludeStaging: c.Query("include_staging") == "true",
	}

	rows, err := h.querySvc.RenderOffers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// Orphaned lists offers whose merchant no longer exists.
func (h *OfferHandler) Orphaned(c *gin.Context) {
	offers, err := h.querySvc.OrphanedOffers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, offers)
}

// Create inserts a new offer from a submitted form.
func (h *OfferHandler) Create(c *gin.Context) {
	var form dto.OfferForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&form)
	input := offerInput(c, form.MerchantID, form.OriginalOfferAmount, form.OfferDescription, form.EndDate, form.CashbackCode)

	id, err := h.catalogSvc.AddOffer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OfferCreatedResponse{OfferID: id})
}

// Update replaces the offer record with the submitted form. The offer id
// and owning merchant are immutable, so the form may leave merchant_id
// out entirely.
func (h *OfferHandler) Update(c *gin.Context) {
	var form dto.OfferUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&form)
	input := offerInput(c, form.MerchantID, form.OriginalOfferAmount, form.OfferDescription, form.EndDate, form.CashbackCode)

	if err := h.catalogSvc.UpdateOffer(c.Request.Context(), c.Param("id"), input); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "offer updated"})
}

// Delete removes the offer.
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.catalogSvc.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "offer deleted"})
}

// offerInput assembles the service input from the bound fields plus the
// checkbox fields, which are read straight off the form: a checked box
// submits the literal "true", an unchecked box submits nothing at all.
func offerInput(c *gin.Context, merchantID, amount, description, endDate, code string) ports.OfferInput {
	conditions := make(map[string]bool, len(domain.Conditions()))
	for _, cond := range domain.Conditions() {
		conditions[cond.Key] = c.PostForm(cond.Key) == "true"
	}

	return ports.OfferInput{
		MerchantID:          merchantID,
		OriginalOfferAmount: amount,
		Description:         description,
		EndDate:             endDate,
		CashbackCode:        code,
		Available:           c.PostForm("available") == "true",
		Conditions:          conditions,
	}
}
