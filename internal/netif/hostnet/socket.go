// internal/netif/hostnet/socket.go
package hostnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/tamzrod/linkmon/internal/netif"
)

// Dialer implements netif.Dialer over the host TCP stack.
type Dialer struct {
	// ConnectTimeout bounds Connect. Zero uses the OS default.
	ConnectTimeout time.Duration

	resolver *net.Resolver
}

// NewDialer creates a host dialer.
func NewDialer(connectTimeout time.Duration) *Dialer {
	return &Dialer{
		ConnectTimeout: connectTimeout,
		resolver:       net.DefaultResolver,
	}
}

func (d *Dialer) Open() (netif.Socket, error) {
	return &tcpSocket{connectTimeout: d.ConnectTimeout}, nil
}

func (d *Dialer) Resolve(host string, port int) (string, error) {
	if host == "" {
		return "", errors.New("hostnet: empty host")
	}
	if ip := net.ParseIP(host); ip != nil {
		return net.JoinHostPort(ip.String(), strconv.Itoa(port)), nil
	}

	addrs, err := d.resolver.LookupIPAddr(context.Background(), host)
	if err != nil {
		return "", fmt.Errorf("hostnet: resolve %s: %w", host, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("hostnet: resolve %s: no addresses", host)
	}
	return net.JoinHostPort(addrs[0].IP.String(), strconv.Itoa(port)), nil
}

// tcpSocket is one TCP connection, dialled lazily on Connect.
type tcpSocket struct {
	connectTimeout time.Duration
	readTimeout    time.Duration
	conn           net.Conn
	closed         bool
}

func (s *tcpSocket) Connect(addr string) error {
	if s.closed {
		return errors.New("hostnet: socket closed")
	}
	if s.conn != nil {
		return errors.New("hostnet: socket already connected")
	}
	conn, err := net.DialTimeout("tcp", addr, s.connectTimeout)
	if err != nil {
		return fmt.Errorf("hostnet: dial %s: %w", addr, err)
	}
	s.conn = conn
	return nil
}

func (s *tcpSocket) SetReadTimeout(d time.Duration) {
	s.readTimeout = d
}

func (s *tcpSocket) Send(b []byte) (int, error) {
	if s.conn == nil {
		return 0, errors.New("hostnet: socket not connected")
	}
	sent := 0
	for sent < len(b) {
		n, err := s.conn.Write(b[sent:])
		sent += n
		if err != nil {
			return sent, fmt.Errorf("hostnet: write: %w", err)
		}
	}
	return sent, nil
}

func (s *tcpSocket) Receive(max int) ([]byte, error) {
	if s.conn == nil {
		return nil, errors.New("hostnet: socket not connected")
	}
	if max <= 0 {
		max = 4096
	}

	if s.readTimeout > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	} else {
		_ = s.conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, max)
	n, err := s.conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return nil, netif.ErrTimeout
	}
	return nil, fmt.Errorf("hostnet: read: %w", err)
}

func (s *tcpSocket) Close() error {
	if s.closed {
		return errors.New("hostnet: socket already closed")
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
