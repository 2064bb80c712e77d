package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cards/internal/errors"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	t.Run("NotFound_Returns404", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, "card"), testLogger())

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_found", response.Code)
	})

	t.Run("InvalidInput_Returns400WithMessage", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "bad prefix"), testLogger())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response.Code)
		assert.Equal(t, "bad prefix: invalid input", response.Error)
	})

	t.Run("UnknownError_Returns500WithoutDetails", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, apperrors.New("secret detail"), testLogger())

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "internal_error", response.Code)
		assert.NotContains(t, response.Error, "secret detail")
	})

	t.Run("NilError_WritesNothing", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, nil, testLogger())

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := testContext()

	HandleBadRequestGin(c, "exact message", testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "exact message"}`, w.Body.String())
}
