// internal/config/config.go
package config

type Config struct {
	Network     NetworkConfig     `yaml:"network" toml:"network"`
	Association AssociationConfig `yaml:"association" toml:"association"`
	Probe       ProbeConfig       `yaml:"probe" toml:"probe"`
	Report      ReportConfig      `yaml:"report" toml:"report"`
	Panel       PanelConfig       `yaml:"panel" toml:"panel"`
	Log         LogConfig         `yaml:"log" toml:"log"`
}

// ---- NETWORK ----

type NetworkConfig struct {
	SSID       string `yaml:"ssid" toml:"ssid"`
	Passphrase string `yaml:"passphrase" toml:"passphrase"`
	Interface  string `yaml:"interface" toml:"interface"`

	// External join/leave commands; {ssid} and {passphrase} are substituted.
	ConnectCommand    []string `yaml:"connect_command" toml:"connect_command"`
	DisconnectCommand []string `yaml:"disconnect_command" toml:"disconnect_command"`
	CommandTimeoutMs  int      `yaml:"command_timeout_ms" toml:"command_timeout_ms"`
}

// ---- ASSOCIATION ----

type AssociationConfig struct {
	MaxAttempts    int `yaml:"max_attempts" toml:"max_attempts"`
	PollIntervalMs int `yaml:"poll_interval_ms" toml:"poll_interval_ms"`
}

// ---- PROBE ----

type ProbeConfig struct {
	Port             int      `yaml:"port" toml:"port"`
	ConnectTimeoutMs int      `yaml:"connect_timeout_ms" toml:"connect_timeout_ms"`
	ReadTimeoutMs    *int     `yaml:"read_timeout_ms" toml:"read_timeout_ms"` // 0 = block forever
	Targets          []Target `yaml:"targets" toml:"targets"`
}

type Target struct {
	Host  string `yaml:"host" toml:"host"`
	Label string `yaml:"label" toml:"label"`
}

// ---- REPORT ----

type ReportConfig struct {
	Rotations      int `yaml:"rotations" toml:"rotations"`
	PageHoldMs     int `yaml:"page_hold_ms" toml:"page_hold_ms"`
	DegradedHoldMs int `yaml:"degraded_hold_ms" toml:"degraded_hold_ms"`
}

// ---- PANEL ----

type PanelConfig struct {
	// Drivers lists the outputs to drive: "term", "modbus", "ws".
	Drivers []string     `yaml:"drivers" toml:"drivers"`
	Modbus  ModbusConfig `yaml:"modbus" toml:"modbus"`
	WS      WSConfig     `yaml:"ws" toml:"ws"`
}

type ModbusConfig struct {
	Endpoint  string `yaml:"endpoint" toml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id" toml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms" toml:"timeout_ms"`
	BaseAddr  uint16 `yaml:"base_addr" toml:"base_addr"`
}

type WSConfig struct {
	Listen string `yaml:"listen" toml:"listen"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"` // empty = stderr
}
