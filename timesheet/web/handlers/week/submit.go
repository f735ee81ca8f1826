package week

import (
	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/timesheet/core"
)

// Submit saves the pending edits and submits the week for approval. On
// failure the draft is kept so the employee can retry.
func (ep *Endpoint) Submit(c *gin.Context) {
	s, err := ep.open(c, false)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}

	submitter := &core.Submitter{
		Entries:   ep.base.Gateway.Entries,
		Approvals: ep.base.Gateway.Approvals,
		Notifier:  ep.base.Notifier,
	}
	ctx := c.Request.Context()
	result, err := submitter.Submit(ctx, s.editor, s.snap)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	if !result.Submitted {
		msg := ep.base.Localizer.NothingToSubmit()
		ep.respond(c, s, &msg)
		return
	}

	// show the saved week
	snap, err := ep.base.Loader().Load(ctx, s.editor.EmployeeID)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	s.snap = snap
	msg := ep.base.Localizer.WeekSubmitted()
	ep.respond(c, s, &msg)
}
