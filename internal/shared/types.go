package shared

// Task type identifiers shared between the scheduler and the worker.
const (
	TypeVideoReconcile = "video:reconcile"
)

// Queue names.
const (
	QueueDefault = "default"
)
