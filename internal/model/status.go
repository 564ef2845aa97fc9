package model

// LoadStatus represents the status of an image load task
type LoadStatus string

const (
	// LoadStatusPending means the load is queued but not started
	LoadStatusPending LoadStatus = "Pending"

	// LoadStatusFetching means the raw bytes are being acquired
	LoadStatusFetching LoadStatus = "Fetching"

	// LoadStatusDecoding means the bytes are being decoded into a bitmap
	LoadStatusDecoding LoadStatus = "Decoding"

	// LoadStatusCompleted means the image is decoded and on screen
	LoadStatusCompleted LoadStatus = "Completed"

	// LoadStatusError means the load failed at fetch or decode
	LoadStatusError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true if the load is in an in-flight state
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusFetching || ls == LoadStatusDecoding
}

// IsFinished returns true if the load is in a terminal state
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusCompleted || ls == LoadStatusError
}
