package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, owner, name string) (Analysis, error)
}
