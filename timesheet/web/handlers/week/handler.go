package week

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/store"
	common "timesheet.app/timesheet/timesheet/web/common"
	web "timesheet.app/timesheet/web/common"
)

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, base *common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/weeks/:monday", endpoint.Get)
	r.POST("/weeks/:monday/reload", endpoint.Reload)
	r.PUT("/weeks/:monday/cells", endpoint.SetCell)
	r.POST("/weeks/:monday/rows", endpoint.AddRow)
	r.PUT("/weeks/:monday/rows/:index", endpoint.SelectRow)
	r.DELETE("/weeks/:monday/rows", endpoint.DeleteRow)
	r.POST("/weeks/:monday/submit", endpoint.Submit)
}

// session is one employee week: the stored editor and the data loaded for it.
type session struct {
	editor *core.WeekEditor
	snap   core.Snapshot
}

// open loads the caller's draft of the requested week, creating it when
// missing, and fetches the week's data. The load is discarded when another
// request started a newer one meanwhile.
func (ep *Endpoint) open(c *gin.Context, reset bool) (*session, error) {
	day, err := core.ParseDateKey(c.Param("monday"), time.UTC)
	if err != nil {
		return nil, &core.ValidationError{Err: err, Message: "invalid week: " + c.Param("monday")}
	}
	ctx := c.Request.Context()
	employeeID := ep.base.Identity(c)
	monday := core.DateKey(core.MondayOf(day))

	editor, err := ep.base.Drafts.Load(ctx, employeeID, monday)
	if errors.Is(err, store.ErrDraftNotFound) {
		editor = core.NewWeekEditor(employeeID, day)
	} else if err != nil {
		return nil, err
	}
	if reset {
		editor.Navigate(day)
	}

	token := editor.BeginLoad()
	if err := ep.base.Drafts.Save(ctx, editor); err != nil {
		return nil, err
	}

	snap, err := ep.base.Loader().Load(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	current, err := ep.base.Drafts.Load(ctx, employeeID, monday)
	if err != nil {
		return nil, err
	}
	if !current.Accept(token) {
		return nil, common.ErrStaleLoad
	}
	return &session{editor: current, snap: snap}, nil
}

// respond saves the editor and answers with the refreshed view.
func (ep *Endpoint) respond(c *gin.Context, s *session, message *core.Message) {
	if err := ep.base.Drafts.Save(c.Request.Context(), s.editor); err != nil {
		ep.base.Fail(c, err)
		return
	}
	view := s.editor.View(s.snap)
	if message != nil {
		c.JSON(http.StatusOK, web.NewMessageResponse(view, message))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(view))
}

func (ep *Endpoint) Get(c *gin.Context) {
	s, err := ep.open(c, false)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(s.editor.View(s.snap)))
}

// Reload drops the unsaved state of the week and fetches it again.
func (ep *Endpoint) Reload(c *gin.Context) {
	s, err := ep.open(c, true)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	ep.respond(c, s, nil)
}

// mutate applies fn to the week and answers with the new view.
func (ep *Endpoint) mutate(c *gin.Context, fn func(s *session) error) {
	s, err := ep.open(c, false)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	if err := fn(s); err != nil {
		ep.base.Fail(c, err)
		return
	}
	ep.respond(c, s, nil)
}
