package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	cardsUseCase "github.com/allisson/cards/internal/cards/usecase"
	apperrors "github.com/allisson/cards/internal/errors"
)

// RunValidate checks a card number against the Luhn algorithm and prints its
// components. Supports both text/JSON output formats. An invalid number is a
// result, not a command failure.
func RunValidate(
	ctx context.Context,
	cardUseCase cardsUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
	format string,
) error {
	logger.Info("validating card number", slog.Int("number_length", len(number)))

	card, err := cardUseCase.Validate(ctx, number)
	if err != nil {
		if apperrors.Is(err, cardsDomain.ErrInvalidCardNumber) {
			if format == "json" {
				return outputValidateJSON(writer, nil)
			}
			return outputValidateText(writer, nil)
		}
		return fmt.Errorf("failed to validate card number: %w", err)
	}

	if format == "json" {
		return outputValidateJSON(writer, card)
	}
	return outputValidateText(writer, card)
}

// outputValidateText outputs the result in human-readable text format.
func outputValidateText(writer io.Writer, card *cardsDomain.Card) error {
	if card == nil {
		_, err := fmt.Fprintln(writer, "Card number is invalid")
		return err
	}

	_, err := fmt.Fprintf(
		writer,
		"Card number is valid\nMII: %s\nIIN: %s\nPAN: %s\nCheck digit: %s\n",
		card.Fields.MII,
		card.Fields.IIN,
		card.Fields.PAN,
		card.Fields.CheckDigit,
	)
	return err
}

// outputValidateJSON outputs the result in JSON format for machine consumption.
func outputValidateJSON(writer io.Writer, card *cardsDomain.Card) error {
	result := map[string]interface{}{
		"is_valid":    false,
		"mii":         nil,
		"iin":         nil,
		"pan":         nil,
		"check_digit": nil,
	}

	if card != nil {
		result["is_valid"] = true
		result["mii"] = card.Fields.MII
		result["iin"] = card.Fields.IIN
		result["pan"] = card.Fields.PAN
		result["check_digit"] = card.Fields.CheckDigit
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}
