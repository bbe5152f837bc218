// internal/netif/netif.go
package netif

import (
	"errors"
	"time"
)

// ErrTimeout is returned by Socket.Receive when the read deadline passes.
var ErrTimeout = errors.New("netif: receive timed out")

// Credentials is the pre-shared network identity. Immutable.
type Credentials struct {
	SSID       string
	Passphrase string
}

// IfConfig is the address configuration of an associated interface.
type IfConfig struct {
	IP      string
	Netmask string
	Gateway string
	DNS     string
}

// Station is association control of the wireless interface.
type Station interface {
	Activate(on bool) error
	Connect(ssid, passphrase string) error
	IsAssociated() bool
	Config() (IfConfig, error)
}

// Dialer produces raw byte-stream sockets and resolves names for them.
type Dialer interface {
	Open() (Socket, error)
	// Resolve returns the first address for host:port.
	Resolve(host string, port int) (string, error)
}

// Socket is one TCP byte stream.
// Close must be safe to call exactly once on any socket returned by Open.
type Socket interface {
	Connect(addr string) error
	// SetReadTimeout bounds each Receive. Zero means block forever.
	SetReadTimeout(d time.Duration)
	Send(b []byte) (int, error)
	// Receive returns up to max bytes from the first available chunk.
	Receive(max int) ([]byte, error)
	Close() error
}
