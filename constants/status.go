package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // accepted, waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusCompleted JobStatus = "COMPLETED" // invoice extracted and split written
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// Tier records which extraction tier produced the final invoice fields.
type Tier string

const (
	// TierTextOnly means the cheap text model answered (directly, or as the
	// retained fallback after a failed vision attempt).
	TierTextOnly Tier = "text_only"
	// TierVisionFallback means the expensive vision model answered.
	TierVisionFallback Tier = "vision_fallback"
)
