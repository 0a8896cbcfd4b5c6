package constants

// Redis key formats
const (
	KeySession        = "operations:session:%s" // Format: operations:session:{user_id}
	KeySessionPattern = "operations:session:*"
)
