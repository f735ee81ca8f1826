package v1

import "time"

const DefaultTimeout = 30 * time.Second

type GatewayClient struct {
	Transport   *Transport
	Auth        *AuthEndpoint
	Projects    *ProjectEndpoint
	SubProjects *SubProjectEndpoint
	Employees   *EmployeeEndpoint
	Entries     *EntryEndpoint
	Approvals   *ApprovalEndpoint
}

// NewGatewayClient initializes the gateway client. An empty baseURL yields a
// client whose every call fails with ErrNotConfigured.
func NewGatewayClient(baseURL string, timeout time.Duration) *GatewayClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := NewTransport(baseURL, timeout)
	return &GatewayClient{
		Transport:   t,
		Auth:        &AuthEndpoint{transport: t},
		Projects:    &ProjectEndpoint{transport: t},
		SubProjects: &SubProjectEndpoint{transport: t},
		Employees:   &EmployeeEndpoint{transport: t},
		Entries:     &EntryEndpoint{transport: t},
		Approvals:   &ApprovalEndpoint{transport: t},
	}
}
