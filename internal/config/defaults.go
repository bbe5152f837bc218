// internal/config/defaults.go
package config

// Compiled-in parameters. A boot-time file may overlay them.
const (
	DefaultSSID       = "54g"
	DefaultPassphrase = "changeme"
	DefaultInterface  = "wlan0"

	DefaultMaxAttempts    = 30
	DefaultPollIntervalMs = 1000

	DefaultPort             = 80
	DefaultConnectTimeoutMs = 5000
	DefaultReadTimeoutMs    = 10000

	DefaultRotations      = 3
	DefaultPageHoldMs     = 1000
	DefaultDegradedHoldMs = 10000

	DefaultModbusTimeoutMs = 1000
	DefaultWSListen        = ":8080"

	DefaultLogLevel = "info"
)

// DefaultTargets is the fixed ordered probe list.
func DefaultTargets() []Target {
	return []Target{
		{Host: "www.google.com", Label: "Google:"},
		{Host: "www.bing.com", Label: "Bing:"},
		{Host: "www.yahoo.co.uk", Label: "Yahoo:"},
	}
}

// Default returns the compiled-in configuration.
func Default() Config {
	readTimeout := DefaultReadTimeoutMs
	return Config{
		Network: NetworkConfig{
			SSID:       DefaultSSID,
			Passphrase: DefaultPassphrase,
			Interface:  DefaultInterface,
		},
		Association: AssociationConfig{
			MaxAttempts:    DefaultMaxAttempts,
			PollIntervalMs: DefaultPollIntervalMs,
		},
		Probe: ProbeConfig{
			Port:             DefaultPort,
			ConnectTimeoutMs: DefaultConnectTimeoutMs,
			ReadTimeoutMs:    &readTimeout,
			Targets:          DefaultTargets(),
		},
		Report: ReportConfig{
			Rotations:      DefaultRotations,
			PageHoldMs:     DefaultPageHoldMs,
			DegradedHoldMs: DefaultDegradedHoldMs,
		},
		Panel: PanelConfig{
			Drivers: []string{"term"},
			Modbus:  ModbusConfig{TimeoutMs: DefaultModbusTimeoutMs},
			WS:      WSConfig{Listen: DefaultWSListen},
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}
