// internal/netif/hostnet/station.go
package hostnet

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/netif"
)

// Station implements netif.Station for a Linux wireless interface.
//
// Joining is delegated to an external command (nmcli, wpa_cli, iwctl ...)
// because the OS owns the supplicant. Association is observed through the
// interface table: up, with an IPv4 address.
//
// A join command that runs but exits non-zero, or overruns CommandTimeout,
// is not a driver fault: the AP may be out of range or the passphrase wrong.
// It is logged and association polling decides the outcome. Only a command
// that cannot be started is reported as an error.
type Station struct {
	Interface         string
	ConnectCommand    []string // {ssid} and {passphrase} are substituted
	DisconnectCommand []string
	CommandTimeout    time.Duration

	active bool
	log    *logrus.Entry

	listInterfaces func() (psnet.InterfaceStatList, error)
	runCommand     func(ctx context.Context, argv []string) error
	routeFile      string
	resolvFile     string
}

// NewStation creates a station bound to the named interface.
func NewStation(iface string, connectCmd, disconnectCmd []string, log *logrus.Entry) *Station {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Station{
		Interface:         iface,
		ConnectCommand:    connectCmd,
		DisconnectCommand: disconnectCmd,
		CommandTimeout:    20 * time.Second,
		listInterfaces:    psnet.Interfaces,
		runCommand:        runExec,
		routeFile:         "/proc/net/route",
		resolvFile:        "/etc/resolv.conf",
		log:               log.WithField("component", "hostnet"),
	}
}

func (s *Station) Activate(on bool) error {
	if !on {
		s.active = false
		if len(s.DisconnectCommand) == 0 {
			return nil
		}
		return s.run(s.DisconnectCommand, "")
	}

	if _, err := s.lookup(); err != nil {
		return err
	}
	s.active = true
	return nil
}

func (s *Station) Connect(ssid, passphrase string) error {
	if !s.active {
		return errors.New("hostnet: interface not active")
	}
	if len(s.ConnectCommand) == 0 {
		// Joining is managed outside the monitor; just observe.
		return nil
	}
	argv := make([]string, len(s.ConnectCommand))
	for i, a := range s.ConnectCommand {
		a = strings.ReplaceAll(a, "{ssid}", ssid)
		a = strings.ReplaceAll(a, "{passphrase}", passphrase)
		argv[i] = a
	}
	return s.run(argv, ssid)
}

func (s *Station) IsAssociated() bool {
	if !s.active {
		return false
	}
	st, err := s.lookup()
	if err != nil {
		return false
	}
	_, _, ok := firstIPv4(st)
	return ok && hasFlag(st, "up")
}

func (s *Station) Config() (netif.IfConfig, error) {
	st, err := s.lookup()
	if err != nil {
		return netif.IfConfig{}, err
	}
	ip, mask, ok := firstIPv4(st)
	if !ok {
		return netif.IfConfig{}, fmt.Errorf("hostnet: %s has no IPv4 address", s.Interface)
	}
	return netif.IfConfig{
		IP:      ip,
		Netmask: mask,
		Gateway: defaultGateway(s.routeFile, s.Interface),
		DNS:     firstNameserver(s.resolvFile),
	}, nil
}

// ---- internal helpers ----

func (s *Station) lookup() (psnet.InterfaceStat, error) {
	list, err := s.listInterfaces()
	if err != nil {
		return psnet.InterfaceStat{}, fmt.Errorf("hostnet: list interfaces: %w", err)
	}
	for _, st := range list {
		if st.Name == s.Interface {
			return st, nil
		}
	}
	return psnet.InterfaceStat{}, fmt.Errorf("hostnet: interface %q not found", s.Interface)
}

func (s *Station) run(argv []string, ssid string) error {
	timeout := s.CommandTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.runCommand(ctx, argv)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || ctx.Err() != nil {
		s.log.WithField("ssid", ssid).Warnf("%s did not complete: %v", argv[0], err)
		return nil
	}

	if ssid != "" {
		return fmt.Errorf("hostnet: %s (ssid=%s): %w", argv[0], ssid, err)
	}
	return fmt.Errorf("hostnet: %s: %w", argv[0], err)
}

func runExec(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func hasFlag(st psnet.InterfaceStat, flag string) bool {
	for _, f := range st.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// firstIPv4 returns the first non-link-local IPv4 address and its dotted netmask.
func firstIPv4(st psnet.InterfaceStat) (string, string, bool) {
	for _, a := range st.Addrs {
		ip, ipnet, err := net.ParseCIDR(a.Addr)
		if err != nil {
			ip = net.ParseIP(a.Addr)
			if ip == nil {
				continue
			}
		}
		v4 := ip.To4()
		if v4 == nil || v4.IsLinkLocalUnicast() || v4.IsUnspecified() {
			continue
		}
		mask := ""
		if ipnet != nil {
			mask = net.IP(ipnet.Mask).String()
		}
		return v4.String(), mask, true
	}
	return "", "", false
}

// defaultGateway reads the kernel routing table. Best-effort: "" on any error.
func defaultGateway(path, iface string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		// Iface Destination Gateway ...
		if len(fields) < 3 || fields[0] != iface || fields[1] != "00000000" {
			continue
		}
		raw, err := hex.DecodeString(fields[2])
		if err != nil || len(raw) != 4 {
			return ""
		}
		// little-endian
		return net.IPv4(raw[3], raw[2], raw[1], raw[0]).String()
	}
	return ""
}

func firstNameserver(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "nameserver" {
			return fields[1]
		}
	}
	return ""
}
