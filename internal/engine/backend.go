package engine

// Backend selects how the frame renderer schedules pixel work.
// Serial is the single-threaded row-major loop; Parallel splits the image
// into tiles drawn by a worker pool. Both produce identical output.
type Backend int

const (
	BackendSerial Backend = iota
	BackendParallel
)

var currentBackend = BackendParallel

// SetBackend selects the active render backend.
// An unknown value falls back to the parallel backend.
func SetBackend(b Backend) {
	switch b {
	case BackendSerial, BackendParallel:
		currentBackend = b
	default:
		currentBackend = BackendParallel
	}
}

// GetBackend returns the currently selected render backend.
func GetBackend() Backend {
	return currentBackend
}
