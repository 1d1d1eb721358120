package handlers

import (
	"net/http"
	"strings"

	"property_manager/internal/adapter/http/dto/response"
	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Signature headers, one per supported processor. The mock gateway reuses
// X-Signature.
const (
	HeaderStripeSignature = "Stripe-Signature"
	HeaderSignature       = "X-Signature"
	HeaderRequestID       = "X-Request-Id"
)

type WebhookHandler struct {
	gateway usecase.IPaymentGatewayUseCase
}

func NewWebhookHandler(gateway usecase.IPaymentGatewayUseCase) *WebhookHandler {
	return &WebhookHandler{gateway: gateway}
}

// HandleWebhook godoc
// @Summary      Processor callback
// @Description  Signature is verified against the raw body. Any verified delivery is acknowledged with 200.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	payload, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("[payment][webhook] unreadable body")
		writeError(c, errInvalidRequest)
		return
	}

	signature := c.GetHeader(HeaderStripeSignature)
	if signature == "" {
		signature = c.GetHeader(HeaderSignature)
	}
	dataID := c.Query("data.id")
	if dataID == "" {
		dataID = c.Query("id")
	}

	result, err := h.gateway.HandleCallback(c.Request.Context(), entities.GatewayCallback{
		Payload:   payload,
		Signature: strings.TrimSpace(signature),
		RequestID: strings.TrimSpace(c.GetHeader(HeaderRequestID)),
		DataID:    strings.TrimSpace(dataID),
	})
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCallbackResult(result))
}
