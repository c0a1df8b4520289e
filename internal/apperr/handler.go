package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagekit-io/connect/pkg/connection"
)

// GlobalErrorHandler maps pagination and validation failures to HTTP
// responses. Cursor problems the caller can fix are 400s; a stale cursor is
// a 409 so clients know to restart from the first page.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		if errors.Is(err, connection.ErrMalformedCursor) || errors.Is(err, connection.ErrInvalidPageSize) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "title": "invalid pagination request"})
			return
		}

		var mismatch *connection.TypeMismatchError
		if errors.As(err, &mismatch) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": mismatch.Error(), "title": "invalid pagination request"})
			return
		}

		var unsupported *connection.UnsupportedOrderFieldError
		if errors.As(err, &unsupported) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": unsupported.Error(), "title": "invalid pagination request"})
			return
		}

		var stale *connection.StaleCursorError
		if errors.As(err, &stale) {
			_ = c.JSON(http.StatusConflict, map[string]string{"error": stale.Error(), "title": "stale cursor"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
