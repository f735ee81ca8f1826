package v1

import (
	"context"
	"strconv"

	"timesheet.app/timesheet/timesheet/model"
)

type SubProjectEndpoint struct {
	transport *Transport
}

// List returns the sub-projects of projectID, or all of them when nil.
func (this *SubProjectEndpoint) List(ctx context.Context, projectID *int) ([]model.SubProject, error) {
	var query map[string]string
	if projectID != nil {
		query = map[string]string{"projectId": strconv.Itoa(*projectID)}
	}
	var result struct {
		SubProjects []model.SubProject `json:"commesse"`
	}
	if err := this.transport.Get(ctx, "getCommesse", query, &result); err != nil {
		return nil, err
	}
	return result.SubProjects, nil
}

func (this *SubProjectEndpoint) Create(ctx context.Context, sub model.SubProject) (int, error) {
	return create(ctx, this.transport, "createCommessa", sub)
}

func (this *SubProjectEndpoint) Update(ctx context.Context, sub model.SubProject) error {
	return update(ctx, this.transport, "updateCommessa", sub)
}

func (this *SubProjectEndpoint) Delete(ctx context.Context, id int) error {
	return this.transport.Get(ctx, "deleteCommessa", map[string]string{"commessaId": strconv.Itoa(id)}, nil)
}
