// internal/association/state.go
package association

import "fmt"

// State is the association lifecycle. Only Manager transitions it.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Failed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// FatalDriverError means the network driver itself failed.
// It is not retryable: the host must reset the device.
type FatalDriverError struct {
	Op  string
	Err error
}

func (e *FatalDriverError) Error() string {
	return fmt.Sprintf("association: fatal driver error during %s: %v", e.Op, e.Err)
}

func (e *FatalDriverError) Unwrap() error { return e.Err }
