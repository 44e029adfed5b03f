package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	switch e := err.(type) {
	case *echo.HTTPError:
		c.Logger().Errorf(
			"handler internal error %s [%d]: %+v\n",
			c.Request().URL.Path, e.Code, e.Internal,
		)
		if err := c.JSON(e.Code, map[string]any{"message": e.Message}); err != nil {
			log.Printf("err returning json: %+v\n", err)
		}
	default:
		c.Logger().Errorf("handler error: %+v\n", e)
		if err := c.JSON(
			http.StatusInternalServerError,
			map[string]any{"message": "something went terribly wrong"},
		); err != nil {
			log.Printf("err returning json: %+v\n", err)
		}
	}
}

func newError(err error, status int, message string) error {
	e := echo.NewHTTPError(status, message)
	if err != nil {
		e = e.WithInternal(err)
	}
	return e
}
