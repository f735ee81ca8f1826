package v1

import (
	"context"
	"strconv"

	"timesheet.app/timesheet/gateway/v1/common"
	"timesheet.app/timesheet/timesheet/model"
)

type EntryEndpoint struct {
	transport *Transport
}

type entriesResponse struct {
	Timesheets []model.TimeEntry `json:"timesheets"`
}

func (this *EntryEndpoint) ListForEmployee(ctx context.Context, employeeID int) ([]model.TimeEntry, error) {
	var result entriesResponse
	err := this.transport.Get(ctx, "getEmployeeTimesheets", map[string]string{
		"employeeId": strconv.Itoa(employeeID),
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Timesheets, nil
}

func (this *EntryEndpoint) List(ctx context.Context, filter model.EntryFilter) ([]model.TimeEntry, error) {
	query := map[string]string{}
	set := func(key string, v *int) {
		if v != nil {
			query[key] = strconv.Itoa(*v)
		}
	}
	set("employeeId", filter.EmployeeID)
	set("projectId", filter.ProjectID)
	set("commessaId", filter.SubProjectID)
	set("anno", filter.Year)
	set("mese", filter.Month)

	var result entriesResponse
	if err := this.transport.Get(ctx, "getTimesheets", query, &result); err != nil {
		return nil, err
	}
	return result.Timesheets, nil
}

func (this *EntryEndpoint) Create(ctx context.Context, entry model.NewEntry) (int, error) {
	return create(ctx, this.transport, "createTimesheet", entry)
}

func (this *EntryEndpoint) Update(ctx context.Context, entry model.EntryUpdate) error {
	return update(ctx, this.transport, "updateTimesheet", entry)
}

func (this *EntryEndpoint) Delete(ctx context.Context, id int) error {
	return this.transport.Get(ctx, "deleteTimesheet", map[string]string{"timesheetId": strconv.Itoa(id)}, nil)
}

// BatchSave sends the three partitions in one call, each as a JSON string.
func (this *EntryEndpoint) BatchSave(ctx context.Context, toCreate []model.NewEntry, toUpdate []model.EntryUpdate, toDelete []int) (*model.BatchResult, error) {
	if toCreate == nil {
		toCreate = []model.NewEntry{}
	}
	if toUpdate == nil {
		toUpdate = []model.EntryUpdate{}
	}
	if toDelete == nil {
		toDelete = []int{}
	}

	query := map[string]string{}
	for key, v := range map[string]any{"toCreate": toCreate, "toUpdate": toUpdate, "toDelete": toDelete} {
		param, err := common.JSONParam(v)
		if err != nil {
			return nil, err
		}
		query[key] = param
	}

	var result model.BatchResult
	if err := this.transport.Get(ctx, "batchSaveTimesheets", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
