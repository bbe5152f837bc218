// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/linkmon/internal/panel"
)

// Known panel drivers.
const (
	DriverTerm   = "term"
	DriverModbus = "modbus"
	DriverWS     = "ws"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// ------------------------------------------------------------
	// NETWORK
	// ------------------------------------------------------------

	if cfg.Network.SSID == "" {
		return fmt.Errorf("network.ssid must not be empty")
	}
	if cfg.Network.Interface == "" {
		return fmt.Errorf("network.interface must not be empty")
	}
	for _, arg := range cfg.Network.ConnectCommand {
		if arg == "" {
			return fmt.Errorf("network.connect_command contains an empty argument")
		}
	}
	if cfg.Network.CommandTimeoutMs < 0 {
		return fmt.Errorf("network.command_timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// ASSOCIATION
	// ------------------------------------------------------------

	if cfg.Association.MaxAttempts <= 0 {
		return fmt.Errorf("association.max_attempts must be > 0")
	}
	if cfg.Association.PollIntervalMs <= 0 {
		return fmt.Errorf("association.poll_interval_ms must be > 0")
	}

	// ------------------------------------------------------------
	// PROBE
	// ------------------------------------------------------------

	if cfg.Probe.Port <= 0 || cfg.Probe.Port > 65535 {
		return fmt.Errorf("probe.port %d out of range", cfg.Probe.Port)
	}
	if cfg.Probe.ConnectTimeoutMs < 0 {
		return fmt.Errorf("probe.connect_timeout_ms must be >= 0")
	}
	if cfg.Probe.ReadTimeoutMs != nil && *cfg.Probe.ReadTimeoutMs < 0 {
		return fmt.Errorf("probe.read_timeout_ms must be >= 0")
	}
	if len(cfg.Probe.Targets) == 0 {
		return fmt.Errorf("probe.targets must not be empty")
	}

	seen := make(map[string]int)
	for i, t := range cfg.Probe.Targets {
		host := strings.TrimSpace(t.Host)
		if host == "" {
			return fmt.Errorf("probe.targets[%d]: host must not be empty", i)
		}
		if prev, exists := seen[host]; exists {
			return fmt.Errorf(
				"probe.targets[%d]: host %q duplicates probe.targets[%d]",
				i,
				host,
				prev,
			)
		}
		seen[host] = i

		// labels are drawn on the panel font (ASCII only)
		for j := 0; j < len(t.Label); j++ {
			if t.Label[j] > 0x7F {
				return fmt.Errorf(
					"probe.targets[%d]: label must contain ASCII characters only",
					i,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// REPORT
	// ------------------------------------------------------------

	if cfg.Report.Rotations <= 0 {
		return fmt.Errorf("report.rotations must be > 0")
	}
	if cfg.Report.PageHoldMs < 0 || cfg.Report.DegradedHoldMs < 0 {
		return fmt.Errorf("report holds must be >= 0")
	}

	// ------------------------------------------------------------
	// PANEL
	// ------------------------------------------------------------

	drivers := make(map[string]bool)
	for _, d := range cfg.Panel.Drivers {
		name := strings.ToLower(strings.TrimSpace(d))
		switch name {
		case DriverTerm, DriverModbus, DriverWS:
		default:
			return fmt.Errorf("panel.drivers: unknown driver %q", d)
		}
		if drivers[name] {
			return fmt.Errorf("panel.drivers: driver %q listed twice", name)
		}
		drivers[name] = true
	}

	if drivers[DriverModbus] {
		if cfg.Panel.Modbus.Endpoint == "" {
			return fmt.Errorf("panel.modbus.endpoint is required when the modbus driver is enabled")
		}
		end := uint32(cfg.Panel.Modbus.BaseAddr) + uint32(panel.SlotsPerPanel)
		if end > 0x10000 {
			return fmt.Errorf(
				"panel.modbus.base_addr %d: block of %d registers overflows address space",
				cfg.Panel.Modbus.BaseAddr,
				panel.SlotsPerPanel,
			)
		}
		if cfg.Panel.Modbus.TimeoutMs < 0 {
			return fmt.Errorf("panel.modbus.timeout_ms must be >= 0")
		}
	}

	if drivers[DriverWS] && cfg.Panel.WS.Listen == "" {
		return fmt.Errorf("panel.ws.listen is required when the ws driver is enabled")
	}

	return nil
}
