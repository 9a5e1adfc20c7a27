// Package notice renders the one-line outcome shown to a user after they
// submit a create or edit form.
package notice

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/pointerutil"
)

type Notice struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int   `json:"id,omitempty"`
}

func Success(message string, id int) *Notice {
	return &Notice{Success: true, Message: message, ID: pointerutil.Int(id)}
}

func Failure(message string) *Notice {
	return &Notice{Message: message}
}

// Listed and NotListed build the create messages for a subject such as
// "Venue The Musical Hop" or "Show".
func Listed(subject string) string {
	return subject + " was successfully listed!"
}

func NotListed(subject string) string {
	return "An error occurred. " + subject + " could not be listed."
}

func Updated(subject string) string {
	return subject + " was successfully updated!"
}

func NotUpdated(subject string) string {
	return "An error occurred. " + subject + " could not be updated."
}

// Render always answers 200; the outcome lives in the body.
func Render(c echo.Context, n *Notice) error {
	return errors.WithStack(c.JSON(http.StatusOK, n))
}
