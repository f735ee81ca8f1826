package v1

import (
	"context"
	"strconv"

	"timesheet.app/timesheet/timesheet/model"
)

type EmployeeEndpoint struct {
	transport *Transport
}

func (this *EmployeeEndpoint) List(ctx context.Context) ([]model.Employee, error) {
	var result struct {
		Employees []model.Employee `json:"employees"`
	}
	if err := this.transport.Get(ctx, "getEmployees", nil, &result); err != nil {
		return nil, err
	}
	return result.Employees, nil
}

func (this *EmployeeEndpoint) Create(ctx context.Context, employee model.Employee) (int, error) {
	return create(ctx, this.transport, "createEmployee", employee)
}

func (this *EmployeeEndpoint) Update(ctx context.Context, employee model.Employee) error {
	return update(ctx, this.transport, "updateEmployee", employee)
}

func (this *EmployeeEndpoint) Delete(ctx context.Context, id int) error {
	return this.transport.Get(ctx, "deleteEmployee", map[string]string{"employeeId": strconv.Itoa(id)}, nil)
}
