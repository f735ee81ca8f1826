package week

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/timesheet/core"
	web "timesheet.app/timesheet/web/common"
)

func (ep *Endpoint) SetCell(c *gin.Context) {
	var dto CellDTO
	if !ep.base.BindJSON(c, &dto) {
		return
	}
	ep.mutate(c, func(s *session) error {
		return s.editor.SetCell(s.snap, core.CellKey{Row: dto.Row, Date: dto.Date}, *dto.Hours)
	})
}

func (ep *Endpoint) AddRow(c *gin.Context) {
	ep.mutate(c, func(s *session) error {
		s.editor.AddRow()
		return nil
	})
}

// SelectRow changes the project and/or the sub-project of a placeholder row.
func (ep *Endpoint) SelectRow(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid index"))
		return
	}
	var dto RowSelectionDTO
	if !ep.base.BindJSON(c, &dto) {
		return
	}
	ep.mutate(c, func(s *session) error {
		if dto.ProjectID != nil {
			if err := s.editor.SelectProject(index, *dto.ProjectID); err != nil {
				return err
			}
		}
		if dto.SubProjectID != nil {
			return s.editor.SelectSubProject(index, *dto.SubProjectID, s.snap.Reference)
		}
		return nil
	})
}

func (ep *Endpoint) DeleteRow(c *gin.Context) {
	var dto RowDTO
	if !ep.base.BindJSON(c, &dto) {
		return
	}
	ep.mutate(c, func(s *session) error {
		return s.editor.DeleteRow(dto.Row)
	})
}
