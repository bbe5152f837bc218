// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for i := range cfg.Probe.Targets {
		t := &cfg.Probe.Targets[i]
		t.Host = strings.TrimSpace(t.Host)

		// Missing label: host followed by a colon, like the built-in ones.
		if t.Label == "" {
			t.Label = t.Host + ":"
		}
	}

	for i, d := range cfg.Panel.Drivers {
		cfg.Panel.Drivers[i] = strings.ToLower(strings.TrimSpace(d))
	}

	if cfg.Probe.ReadTimeoutMs == nil {
		v := DefaultReadTimeoutMs
		cfg.Probe.ReadTimeoutMs = &v
	}
	if cfg.Panel.Modbus.TimeoutMs == 0 {
		cfg.Panel.Modbus.TimeoutMs = DefaultModbusTimeoutMs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// HasDriver reports whether the named panel driver is enabled.
func (c *Config) HasDriver(name string) bool {
	for _, d := range c.Panel.Drivers {
		if d == name {
			return true
		}
	}
	return false
}
