package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cashback-catalog-service/internal/adapter/http/dto"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/pkg/apperror"
	"cashback-catalog-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderSignature carries the HMAC signature of the webhook body.
const HeaderSignature = "X-Signature"

// WebhookHandler receives catalog-sync events from the upstream source.
// A verified event invalidates the rendered view cache so the next read
// re-renders from storage.
type WebhookHandler struct {
	secret    string
	viewCache ports.OfferViewCache // nil = cache disabled
	log       zerolog.Logger
}

// NewWebhookHandler creates a new catalog-sync webhook handler.
func NewWebhookHandler(secret string, viewCache ports.OfferViewCache, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{secret: secret, viewCache: viewCache, log: log}
}

// CatalogSync handles POST /webhooks/catalog-sync.
//
// The subscription handshake sends a one-off payload carrying a
// verification_token, acknowledged with an empty 200 before any
// signature exists to check. Every later event must carry
// "sha256=<hex>" over the raw body in the X-Signature header.
func (h *WebhookHandler) CatalogSync(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	var event dto.SyncEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.Error(c, apperror.Validation("body is not valid JSON"))
		return
	}

	if event.VerificationToken != "" {
		h.log.Info().Msg("received catalog-sync verification token")
		c.Status(http.StatusOK)
		return
	}

	signature := c.GetHeader(HeaderSignature)
	if signature == "" {
		response.Error(c, apperror.Validation("missing signature header"))
		return
	}
	if h.secret == "" {
		response.Error(c, apperror.InternalError(errors.New("webhook secret not configured")))
		return
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	calculated := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(calculated), []byte(signature)) {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	h.log.Info().Str("type", event.Type).Msg("catalog-sync event received")

	if h.viewCache != nil {
		if err := h.viewCache.Invalidate(c.Request.Context()); err != nil {
			h.log.Warn().Err(err).Msg("view cache invalidation failed")
		}
	}

	response.OK(c, gin.H{"received": true})
}
