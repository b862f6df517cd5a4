package port

import "context"

// EventEmitter publishes domain events fire-and-forget. Emission failures are
// logged by the caller, never rolled back or retried.
type EventEmitter interface {
	Emit(ctx context.Context, name string, payload any) error
}
