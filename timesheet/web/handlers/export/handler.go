package export

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/reports"
	"timesheet.app/timesheet/timesheet/model"
	common "timesheet.app/timesheet/timesheet/web/common"
	web "timesheet.app/timesheet/web/common"
)

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, base *common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/timesheets/export", endpoint.Export)
}

func queryInt(c *gin.Context, key string) (*int, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &n, nil
}

// Export downloads the filtered entries as xlsx (default) or csv.
func (ep *Endpoint) Export(c *gin.Context) {
	var filter model.EntryFilter
	for key, target := range map[string]**int{
		"employeeId": &filter.EmployeeID,
		"projectId":  &filter.ProjectID,
		"commessaId": &filter.SubProjectID,
		"anno":       &filter.Year,
		"mese":       &filter.Month,
	} {
		v, err := queryInt(c, key)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		*target = v
	}

	data, err := reports.Fetch(c.Request.Context(), ep.base.Gateway, filter, ep.base.Loc())
	if err != nil {
		ep.base.Fail(c, err)
		return
	}

	var (
		buf      bytes.Buffer
		mime     string
		filename = "timesheet-" + time.Now().Format("20060102")
	)
	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		err = reports.WriteXLSX(&buf, data.Rows, data.Weeks)
		mime, filename = reports.XLSXMime, filename+".xlsx"
	case "csv":
		err = reports.WriteCSV(&buf, data.Rows, c.DefaultQuery("encoding", "windows-1252"))
		mime, filename = reports.CSVMime, filename+".csv"
	default:
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unsupported format "+format))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mime, buf.Bytes())
}
