package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	common "timesheet.app/timesheet/timesheet/web/common"
	web "timesheet.app/timesheet/web/common"
)

type Endpoint struct {
	base *common.Handler
}

// Register mounts the management of projects, commesse and employees.
func Register(r *gin.RouterGroup, base *common.Handler) {
	endpoint := &Endpoint{base: base}
	gw := base.Gateway

	r.GET("/projects", endpoint.ListProjects)
	mount(r, "/projects", base, gw.Projects.Create, gw.Projects.Update, gw.Projects.Delete, ProjectDTO.toModel)

	r.GET("/commesse", endpoint.ListSubProjects)
	mount(r, "/commesse", base, gw.SubProjects.Create, gw.SubProjects.Update, gw.SubProjects.Delete, SubProjectDTO.toModel)

	r.GET("/employees", endpoint.ListEmployees)
	mount(r, "/employees", base, gw.Employees.Create, gw.Employees.Update, gw.Employees.Delete, EmployeeDTO.toModel)
}

// mount registers create, update and delete of one resource. D is the
// request body, M the gateway model it converts to.
func mount[D any, M any](
	r *gin.RouterGroup,
	path string,
	base *common.Handler,
	create func(context.Context, M) (int, error),
	update func(context.Context, M) error,
	remove func(context.Context, int) error,
	toModel func(D, int) M,
) {
	r.POST(path, func(c *gin.Context) {
		var dto D
		if !base.BindJSON(c, &dto) {
			return
		}
		id, err := create(c.Request.Context(), toModel(dto, 0))
		if err != nil {
			base.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, web.NewMessageResponse(gin.H{"id": id}, base.Localizer.Saved()))
	})

	r.PUT(path+"/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var dto D
		if !base.BindJSON(c, &dto) {
			return
		}
		if err := update(c.Request.Context(), toModel(dto, id)); err != nil {
			base.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, web.NewMessageResponse(gin.H{"id": id}, base.Localizer.Saved()))
	})

	r.DELETE(path+"/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := remove(c.Request.Context(), id); err != nil {
			base.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, web.NewMessageResponse(gin.H{"id": id}, base.Localizer.Deleted()))
	})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}

func (ep *Endpoint) ListProjects(c *gin.Context) {
	projects, err := ep.base.Gateway.Projects.List(c.Request.Context())
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewListResponse(projects))
}

// ListSubProjects lists every commessa, or those of ?projectId=.
func (ep *Endpoint) ListSubProjects(c *gin.Context) {
	var projectID *int
	if v := c.Query("projectId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid projectId"))
			return
		}
		projectID = &id
	}
	subs, err := ep.base.Gateway.SubProjects.List(c.Request.Context(), projectID)
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewListResponse(subs))
}

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	employees, err := ep.base.Gateway.Employees.List(c.Request.Context())
	if err != nil {
		ep.base.Fail(c, err)
		return
	}
	// passwords never leave the server
	for i := range employees {
		employees[i].Password = ""
	}
	c.JSON(http.StatusOK, web.NewListResponse(employees))
}
