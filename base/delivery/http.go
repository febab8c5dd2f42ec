package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demarket/goapi/domain"
)

// ErrorResponse is the JSON body returned on every failure path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MakeJsonResp writes data as a plain JSON body. Error values are
// rendered as an ErrorResponse with a generic title.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		return MakeErrorResp(c, status, "request failed", err)
	}
	return c.JSON(status, data)
}

// MakeErrorResp writes an ErrorResponse carrying a short title and the
// underlying error message. Not-found errors are mapped to 404.
func MakeErrorResp(c echo.Context, status int, title string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrItemNotFound) {
		status = http.StatusNotFound
	}
	return c.JSON(status, ErrorResponse{
		Error:   title,
		Message: err.Error(),
	})
}
