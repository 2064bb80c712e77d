// Package http provides HTTP handlers for card number validation and
// generation. Both operations are pure functions over the request input, so
// handlers hold no state beyond their dependencies.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	"github.com/allisson/cards/internal/cards/http/dto"
	cardsUseCase "github.com/allisson/cards/internal/cards/usecase"
	apperrors "github.com/allisson/cards/internal/errors"
	"github.com/allisson/cards/internal/httputil"
)

// CardHandler handles HTTP requests for card number operations.
type CardHandler struct {
	cardUseCase cardsUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardsUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ValidateHandler validates a card number supplied as a query parameter.
// GET /api/validate?number=4532015112830366
// Returns 200 with decomposed fields for a valid number, 400 with the
// null-field body for an invalid one, and 400 with an error payload when the
// parameter is missing entirely.
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	number, present := c.GetQuery("number")
	if !present {
		httputil.HandleBadRequestGin(c, cardsDomain.MissingNumberErrorMessage, h.logger)
		return
	}

	req := dto.ValidateCardRequest{Number: number}
	if err := req.Validate(); err != nil {
		// Present but empty: an invalid number, not a malformed request.
		c.JSON(http.StatusBadRequest, dto.NewInvalidCardResponse())
		return
	}

	card, err := h.cardUseCase.Validate(c.Request.Context(), req.Number)
	if err != nil {
		if apperrors.Is(err, cardsDomain.ErrInvalidCardNumber) {
			c.JSON(http.StatusBadRequest, dto.NewInvalidCardResponse())
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}

// GenerateHandler generates a card number from an issuer prefix.
// GET /api/generate?iin=65
// Returns 200 with the decomposed generated number, or 400 with the
// documented rejection message when the prefix is missing or invalid.
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	req := dto.GenerateCardRequest{IIN: c.Query("iin")}
	if err := req.Validate(); err != nil {
		httputil.HandleBadRequestGin(c, cardsDomain.IssuerPrefixErrorMessage, h.logger)
		return
	}

	card, err := h.cardUseCase.Generate(c.Request.Context(), req.IIN)
	if err != nil {
		if apperrors.Is(err, cardsDomain.ErrInvalidIssuerPrefix) {
			httputil.HandleBadRequestGin(c, cardsDomain.IssuerPrefixErrorMessage, h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}
