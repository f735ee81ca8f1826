package v1

import (
	"context"
	"strconv"
)

type ApprovalEndpoint struct {
	transport *Transport
}

func weekParams(employeeID int, weekStart, weekEnd string) map[string]string {
	return map[string]string{
		"employeeId": strconv.Itoa(employeeID),
		"weekStart":  weekStart,
		"weekEnd":    weekEnd,
	}
}

// SubmitWeek moves every entry of the week back to pending approval.
func (this *ApprovalEndpoint) SubmitWeek(ctx context.Context, employeeID int, weekStart, weekEnd string) error {
	return this.transport.Get(ctx, "submitWeekForApproval", weekParams(employeeID, weekStart, weekEnd), nil)
}

func (this *ApprovalEndpoint) ApproveEntry(ctx context.Context, id int, approvedBy string) error {
	return this.transport.Get(ctx, "approveTimesheet", map[string]string{
		"timesheetId": strconv.Itoa(id),
		"approvedBy":  approvedBy,
	}, nil)
}

func (this *ApprovalEndpoint) RejectEntry(ctx context.Context, id int, rejectedBy string) error {
	return this.transport.Get(ctx, "rejectTimesheet", map[string]string{
		"timesheetId": strconv.Itoa(id),
		"rejectedBy":  rejectedBy,
	}, nil)
}

func (this *ApprovalEndpoint) ApproveWeek(ctx context.Context, employeeID int, weekStart, weekEnd, approvedBy string) error {
	params := weekParams(employeeID, weekStart, weekEnd)
	params["approvedBy"] = approvedBy
	return this.transport.Get(ctx, "approveWeek", params, nil)
}

func (this *ApprovalEndpoint) RejectWeek(ctx context.Context, employeeID int, weekStart, weekEnd, rejectedBy string) error {
	params := weekParams(employeeID, weekStart, weekEnd)
	params["rejectedBy"] = rejectedBy
	return this.transport.Get(ctx, "rejectWeek", params, nil)
}
