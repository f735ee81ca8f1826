package common

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/message"

	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/store"
	web "timesheet.app/timesheet/web/common"
	"timesheet.app/timesheet/web/middlewares"
)

// Handler holds what every endpoint needs.
type Handler struct {
	Gateway   *gateway.GatewayClient
	Drafts    store.DraftStore
	Localizer *core.Localizer
	Location  *time.Location
	Notifier  core.Notifier
}

// Fail writes err as an error message with the status its kind maps to.
func (h *Handler) Fail(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := h.Localizer.Error(err)
	if status >= http.StatusInternalServerError {
		fmt.Printf("[ERROR] %s %s: %v (request %s)\n", c.Request.Method, c.FullPath(), err, middlewares.GetRequestID(c))
	}
	c.JSON(status, web.NewErrorResponse(msg.Text))
}

func StatusOf(err error) int {
	var (
		validation *core.ValidationError
		incomplete *core.IncompleteWeekError
		remote     *gateway.RemoteError
		transport  *gateway.TransportError
	)
	switch {
	case errors.As(err, &incomplete), errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStaleLoad):
		return http.StatusConflict
	case errors.Is(err, gateway.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, gateway.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &remote):
		return http.StatusBadRequest
	case errors.As(err, &transport), errors.Is(err, gateway.ErrInvalidResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

var ErrStaleLoad = errors.New("the week changed while loading, reload it")

// Identity is the authenticated caller. Routes are always behind Authentication.
func (h *Handler) Identity(c *gin.Context) int {
	if identity := middlewares.GetIdentity(c); identity != nil {
		return identity.ID
	}
	return 0
}

// Loc is the zone entry timestamps are read in.
func (h *Handler) Loc() *time.Location {
	if h.Location == nil {
		return time.Local
	}
	return h.Location
}

func (h *Handler) Loader() *core.Loader {
	return &core.Loader{
		Projects:    h.Gateway.Projects,
		SubProjects: h.Gateway.SubProjects,
		Entries:     h.Gateway.Entries,
		Location:    h.Loc(),
	}
}

// BindJSON binds the body, answering 400 in the configured language on
// failure.
func (h *Handler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var p *message.Printer
		if h.Localizer != nil {
			p = h.Localizer.Printer()
		}
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err, p)))
		return false
	}
	return true
}
