package constants

// NATS Subjects
const (
	// Fleet
	SubjectPositionUpdated = "fleet.position.updated"
)
