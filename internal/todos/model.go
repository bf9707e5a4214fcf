package todos

import "time"

// Todo is a persisted todo item. Timestamps are server-side bookkeeping
// and never serialized to clients.
type Todo struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
