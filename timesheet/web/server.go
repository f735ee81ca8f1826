package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/security"
	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/store"
	common "timesheet.app/timesheet/timesheet/web/common"
	"timesheet.app/timesheet/timesheet/web/handlers/admin"
	"timesheet.app/timesheet/timesheet/web/handlers/approval"
	"timesheet.app/timesheet/timesheet/web/handlers/auth"
	"timesheet.app/timesheet/timesheet/web/handlers/export"
	"timesheet.app/timesheet/timesheet/web/handlers/week"
	"timesheet.app/timesheet/web/middlewares"
)

type Options struct {
	Gateway       *gateway.GatewayClient
	Drafts        store.DraftStore
	Notifier      core.Notifier
	Language      string
	Location      *time.Location
	SigningKey    string // base64
	TokenTTL      time.Duration
	CookieName    string
	DisableLogger bool
}

// NewRouter builds the API. Every route but ping and login needs a session
// token; management routes need the manager role.
func NewRouter(opts Options) (*gin.Engine, error) {
	secret, err := security.DecodeSecret(opts.SigningKey)
	if err != nil {
		return nil, err
	}
	if opts.Drafts == nil {
		opts.Drafts = store.NewMemoryStore()
	}

	base := &common.Handler{
		Gateway:   opts.Gateway,
		Drafts:    opts.Drafts,
		Localizer: core.NewLocalizer(opts.Language),
		Location:  opts.Location,
		Notifier:  opts.Notifier,
	}

	r := gin.New()
	if !opts.DisableLogger {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery(), middlewares.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api/v1")
	auth.Register(api, base, opts.SigningKey, opts.TokenTTL, opts.CookieName)

	protected := api.Group("")
	protected.Use(middlewares.Authentication(secret, opts.CookieName))
	{
		week.Register(protected, base)

		manager := protected.Group("")
		manager.Use(middlewares.RequireManager())
		approval.Register(manager, base)
		admin.Register(manager, base)
		export.Register(manager, base)
	}

	return r, nil
}
