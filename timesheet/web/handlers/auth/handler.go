package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/security"
	"timesheet.app/timesheet/timesheet/model"
	common "timesheet.app/timesheet/timesheet/web/common"
	web "timesheet.app/timesheet/web/common"
)

type Endpoint struct {
	base         *common.Handler
	base64Secret string
	ttl          time.Duration
	cookieName   string
}

func Register(r *gin.RouterGroup, base *common.Handler, base64Secret string, ttl time.Duration, cookieName string) {
	endpoint := &Endpoint{base: base, base64Secret: base64Secret, ttl: ttl, cookieName: cookieName}
	r.POST("/login", endpoint.Login)
	r.POST("/logout", endpoint.Logout)
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if !ep.base.BindJSON(c, &dto) {
		return
	}

	user, err := ep.base.Gateway.Auth.Login(c.Request.Context(), dto.Username, dto.Password)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}

	token, err := security.CreateIdentityToken(security.IdentityOf(user), ep.base64Secret, ep.ttl)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ep.cookieName, token, int(ep.ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, web.NewSuccessResponse(LoginResult{Token: token, User: user}))
}

func (ep *Endpoint) Logout(c *gin.Context) {
	c.SetCookie(ep.cookieName, "", -1, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
