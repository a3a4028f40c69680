package outbox

// Outbox rows are persisted inside the same atomic mutation as engine state
// changes. The worker relay reads pending rows and publishes to the event bus.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)
