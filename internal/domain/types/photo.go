package types

// PhotoStatus reports how a photo acquisition ended.
type PhotoStatus int

const (
	// PhotoCancelled means the user backed out and nothing was stored.
	PhotoCancelled PhotoStatus = iota
	// PhotoCompleted means a new image was stored and recorded.
	PhotoCompleted
)

// String returns a lower-case name for the status.
func (s PhotoStatus) String() string {
	switch s {
	case PhotoCompleted:
		return "completed"
	default:
		return "cancelled"
	}
}

// PhotoResult is the outcome of a camera capture or gallery pick.
type PhotoResult struct {
	Status  PhotoStatus
	Locator PhotoLocator
}
