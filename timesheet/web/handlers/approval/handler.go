package approval

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
	common "timesheet.app/timesheet/timesheet/web/common"
	web "timesheet.app/timesheet/web/common"
	"timesheet.app/timesheet/web/middlewares"
)

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, base *common.Handler) {
	endpoint := &Endpoint{base: base}
	r.POST("/timesheets/search", endpoint.Search)
	r.POST("/timesheets/:id/approve", endpoint.ApproveEntry)
	r.POST("/timesheets/:id/reject", endpoint.RejectEntry)
	r.GET("/approvals/weeks", endpoint.Weeks)
	r.POST("/approvals/weeks/approve", endpoint.ApproveWeek)
	r.POST("/approvals/weeks/reject", endpoint.RejectWeek)
}

type SearchParams struct {
	EmployeeID   *int              `json:"employeeId"`
	ProjectID    *int              `json:"projectId"`
	SubProjectID *int              `json:"commessaId"`
	Year         *int              `json:"anno" binding:"omitempty,min=2000"`
	Month        *int              `json:"mese" binding:"omitempty,min=1,max=12"`
	Status       model.EntryStatus `json:"stato" binding:"omitempty,oneof=pending approved rejected"`
}

func (p SearchParams) Filter() model.EntryFilter {
	return model.EntryFilter{
		EmployeeID:   p.EmployeeID,
		ProjectID:    p.ProjectID,
		SubProjectID: p.SubProjectID,
		Year:         p.Year,
		Month:        p.Month,
	}
}

type SearchResult struct {
	Timesheets []model.TimeEntry  `json:"timesheets"`
	Summary    core.EntrySummary `json:"summary"`
}

// Search lists entries with the remote filters, then the status filter.
func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if !ep.base.BindJSON(c, &params) {
		return
	}

	entries, err := ep.base.Gateway.Entries.List(c.Request.Context(), params.Filter())
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	entries = core.FilterByStatus(core.NormalizeEntries(entries, ep.base.Loc()), params.Status)
	if entries == nil {
		entries = []model.TimeEntry{}
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(SearchResult{
		Timesheets: entries,
		Summary:    core.Summarize(entries),
	}, int64(len(entries))))
}

// Weeks groups entries by employee and week. Only pending entries are
// grouped unless pendingOnly=false.
func (ep *Endpoint) Weeks(c *gin.Context) {
	pendingOnly := c.DefaultQuery("pendingOnly", "true") != "false"
	ctx := c.Request.Context()

	var (
		entries   []model.TimeEntry
		employees []model.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = ep.base.Gateway.Entries.List(gctx, model.EntryFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = ep.base.Gateway.Employees.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		ep.base.Fail(c, err)
		return
	}

	groups := core.GroupWeeks(core.NormalizeEntries(entries, ep.base.Loc()), employees, pendingOnly)
	c.JSON(http.StatusOK, web.NewListResponse(groups))
}

func (ep *Endpoint) decide(c *gin.Context, fn func(id int, by string) error, msg core.Message) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}
	if err := ep.checkPending(c, id); err != nil {
		ep.base.Fail(c, err)
		return
	}
	if err := fn(id, approverName(c)); err != nil {
		ep.base.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse(gin.H{"id": id}, msg))
}

// checkPending refuses to decide an entry that is already approved or
// rejected. Unknown ids are left to the backend, which reports them.
func (ep *Endpoint) checkPending(c *gin.Context, id int) error {
	entries, err := ep.base.Gateway.Entries.List(c.Request.Context(), model.EntryFilter{})
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return core.CheckPending(entry)
		}
	}
	return nil
}

func (ep *Endpoint) ApproveEntry(c *gin.Context) {
	ctx := c.Request.Context()
	ep.decide(c, func(id int, by string) error {
		return ep.base.Gateway.Approvals.ApproveEntry(ctx, id, by)
	}, ep.base.Localizer.EntryApproved())
}

func (ep *Endpoint) RejectEntry(c *gin.Context) {
	ctx := c.Request.Context()
	ep.decide(c, func(id int, by string) error {
		return ep.base.Gateway.Approvals.RejectEntry(ctx, id, by)
	}, ep.base.Localizer.EntryRejected())
}

type WeekDecisionDTO struct {
	EmployeeID int           `json:"employeeId" binding:"required"`
	WeekStart  *web.DateOnly `json:"weekStart" binding:"required"`
}

func (ep *Endpoint) decideWeek(c *gin.Context, status model.EntryStatus, fn func(employeeID int, start, end, by string) error, msg core.Message) {
	var dto WeekDecisionDTO
	if !ep.base.BindJSON(c, &dto) {
		return
	}
	week := core.WeekOf(dto.WeekStart.Time)
	start, end := core.DateKey(week.Monday()), core.DateKey(week.Sunday())
	by := approverName(c)
	if err := fn(dto.EmployeeID, start, end, by); err != nil {
		ep.base.Fail(c, err)
		return
	}
	if n, ok := ep.base.Notifier.(core.DecisionNotifier); ok {
		if err := n.WeekDecided(c.Request.Context(), dto.EmployeeID, start, end, status, by); err != nil {
			fmt.Printf("[WARN] failed to notify week decision: %v\n", err)
		}
	}
	c.JSON(http.StatusOK, web.NewMessageResponse(gin.H{
		"employeeId": dto.EmployeeID,
		"weekStart":  start,
		"weekEnd":    end,
	}, msg))
}

func (ep *Endpoint) ApproveWeek(c *gin.Context) {
	ctx := c.Request.Context()
	ep.decideWeek(c, model.StatusApproved, func(employeeID int, start, end, by string) error {
		return ep.base.Gateway.Approvals.ApproveWeek(ctx, employeeID, start, end, by)
	}, ep.base.Localizer.WeekApproved())
}

func (ep *Endpoint) RejectWeek(c *gin.Context) {
	ctx := c.Request.Context()
	ep.decideWeek(c, model.StatusRejected, func(employeeID int, start, end, by string) error {
		return ep.base.Gateway.Approvals.RejectWeek(ctx, employeeID, start, end, by)
	}, ep.base.Localizer.WeekRejected())
}

// approverName is recorded by the backend as approvato_da.
func approverName(c *gin.Context) string {
	identity := middlewares.GetIdentity(c)
	if identity == nil {
		return ""
	}
	if identity.Name != "" {
		return identity.Name
	}
	return identity.UserName
}
