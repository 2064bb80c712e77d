package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	cardsUseCase "github.com/allisson/cards/internal/cards/usecase"
)

// RunGenerate creates a Luhn-valid card number starting with the given issuer
// prefix and prints it. Supports both text/JSON output formats.
func RunGenerate(
	ctx context.Context,
	cardUseCase cardsUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	iin string,
	format string,
) error {
	logger.Info("generating card number", slog.String("iin", iin))

	card, err := cardUseCase.Generate(ctx, iin)
	if err != nil {
		return fmt.Errorf("failed to generate card number: %w", err)
	}

	if format == "json" {
		return outputGenerateJSON(writer, card)
	}
	return outputGenerateText(writer, card)
}

// outputGenerateText outputs the result in human-readable text format.
func outputGenerateText(writer io.Writer, card *cardsDomain.Card) error {
	_, err := fmt.Fprintf(
		writer,
		"Generated card number: %s\nMII: %s\nIIN: %s\nPAN: %s\nCheck digit: %s\n",
		card.Number,
		card.Fields.MII,
		card.Fields.IIN,
		card.Fields.PAN,
		card.Fields.CheckDigit,
	)
	return err
}

// outputGenerateJSON outputs the result in JSON format for machine consumption.
func outputGenerateJSON(writer io.Writer, card *cardsDomain.Card) error {
	result := map[string]interface{}{
		"number":      card.Number,
		"is_valid":    true,
		"mii":         card.Fields.MII,
		"iin":         card.Fields.IIN,
		"pan":         card.Fields.PAN,
		"check_digit": card.Fields.CheckDigit,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}
