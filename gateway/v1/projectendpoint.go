package v1

import (
	"context"
	"strconv"

	"timesheet.app/timesheet/gateway/v1/common"
	"timesheet.app/timesheet/timesheet/model"
)

type ProjectEndpoint struct {
	transport *Transport
}

func (this *ProjectEndpoint) List(ctx context.Context) ([]model.Project, error) {
	var result struct {
		Projects []model.Project `json:"projects"`
	}
	if err := this.transport.Get(ctx, "getProjects", nil, &result); err != nil {
		return nil, err
	}
	return result.Projects, nil
}

func (this *ProjectEndpoint) Create(ctx context.Context, project model.Project) (int, error) {
	return create(ctx, this.transport, "createProject", project)
}

func (this *ProjectEndpoint) Update(ctx context.Context, project model.Project) error {
	return update(ctx, this.transport, "updateProject", project)
}

func (this *ProjectEndpoint) Delete(ctx context.Context, id int) error {
	return this.transport.Get(ctx, "deleteProject", map[string]string{"projectId": strconv.Itoa(id)}, nil)
}

// create sends every field but the id and returns the id assigned remotely.
func create(ctx context.Context, t *Transport, action string, v any) (int, error) {
	params, err := common.ToParams(v, "id")
	if err != nil {
		return 0, err
	}
	var result common.StatusAPIResponse
	if err := t.Get(ctx, action, params, &result); err != nil {
		return 0, err
	}
	if result.ID == nil {
		return 0, nil
	}
	return *result.ID, nil
}

func update(ctx context.Context, t *Transport, action string, v any) error {
	params, err := common.ToParams(v)
	if err != nil {
		return err
	}
	return t.Get(ctx, action, params, nil)
}
