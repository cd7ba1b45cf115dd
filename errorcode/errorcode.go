package errorcode

// ErrorCode command error code carried in the daemon's error envelope
type ErrorCode int

const (
	// Normal generic command failure
	Normal ErrorCode = 0
	// Client the request was malformed
	Client ErrorCode = 1
	// Implementation daemon side failure
	Implementation ErrorCode = 2
	// NotFound the object is not known to the daemon
	NotFound ErrorCode = 3
	// Fatal the daemon cannot continue
	Fatal ErrorCode = 4
)
