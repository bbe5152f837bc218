// cmd/linkmon/main.go
package main

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/association"
	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/config"
	"github.com/tamzrod/linkmon/internal/display"
	"github.com/tamzrod/linkmon/internal/health"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/logging"
	"github.com/tamzrod/linkmon/internal/monitor"
	"github.com/tamzrod/linkmon/internal/netif"
	"github.com/tamzrod/linkmon/internal/netif/hostnet"
	"github.com/tamzrod/linkmon/internal/prober"
)

func main() {
	var cfgPath string
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	logging.Setup(cfg.Log)
	mainLog := logging.Component("main")

	bootBanner(mainLog, cfg)

	// --------------------
	// Output devices
	// --------------------

	dev, closePanel, err := buildPanel(cfg)
	if err != nil {
		mainLog.Fatalf("panel build failed: %v", err)
	}

	if cfg.HasDriver(config.DriverWS) {
		mainLog.Infof("virtual panel at http://%s/", cfg.Panel.WS.Listen)
	}

	lamp := indicator.NewLamp(dev, nil)
	screen := display.NewScreen(dev, nil)
	lamp.Set(indicator.Off)
	screen.Blank()

	// --------------------
	// Core pipeline
	// --------------------

	clk := clock.System{}

	station := hostnet.NewStation(
		cfg.Network.Interface,
		cfg.Network.ConnectCommand,
		cfg.Network.DisconnectCommand,
		nil,
	)
	if cfg.Network.CommandTimeoutMs > 0 {
		station.CommandTimeout = ms(cfg.Network.CommandTimeoutMs)
	}

	assocCfg := association.DefaultConfig()
	assocCfg.MaxAttempts = cfg.Association.MaxAttempts
	assocCfg.PollInterval = ms(cfg.Association.PollIntervalMs)

	assoc, err := association.New(assocCfg, station, lamp, screen, clk, nil)
	if err != nil {
		mainLog.Fatalf("association build failed: %v", err)
	}

	prb, err := prober.New(
		prober.Config{
			Port:        cfg.Probe.Port,
			ReadTimeout: ms(*cfg.Probe.ReadTimeoutMs),
		},
		hostnet.NewDialer(ms(cfg.Probe.ConnectTimeoutMs)),
		lamp,
		clk,
		nil,
	)
	if err != nil {
		mainLog.Fatalf("prober build failed: %v", err)
	}

	reporter, err := health.New(
		health.Config{
			Rotations:    cfg.Report.Rotations,
			PageHold:     ms(cfg.Report.PageHoldMs),
			DegradedHold: ms(cfg.Report.DegradedHoldMs),
		},
		prb,
		lamp,
		screen,
		clk,
		nil,
	)
	if err != nil {
		mainLog.Fatalf("reporter build failed: %v", err)
	}

	targets := make([]health.Target, 0, len(cfg.Probe.Targets))
	for _, t := range cfg.Probe.Targets {
		targets = append(targets, health.Target{Host: t.Host, Label: t.Label})
	}

	loop, err := monitor.New(
		netif.Credentials{SSID: cfg.Network.SSID, Passphrase: cfg.Network.Passphrase},
		targets,
		assoc,
		reporter,
		lamp,
		clk,
		nil,
	)
	if err != nil {
		mainLog.Fatalf("loop build failed: %v", err)
	}

	// --------------------
	// Run forever; only a fatal driver error returns
	// --------------------

	runErr := loop.Run()
	closePanel()

	var fatal *association.FatalDriverError
	if errors.As(runErr, &fatal) {
		mainLog.Errorf("fatal driver error, resetting: %v", runErr)
		reset(mainLog)
	}

	mainLog.Fatalf("monitor loop stopped: %v", runErr)
}

// reset replaces the process image with a fresh copy of itself.
// If exec fails the process exits non-zero for its supervisor.
func reset(l *log.Entry) {
	exe, err := os.Executable()
	if err == nil {
		err = syscall.Exec(exe, os.Args, os.Environ())
	}
	l.Errorf("re-exec failed: %v", err)
	os.Exit(1)
}

func bootBanner(l *log.Entry, cfg *config.Config) {
	fields := log.Fields{
		"ssid":    cfg.Network.SSID,
		"iface":   cfg.Network.Interface,
		"targets": len(cfg.Probe.Targets),
		"drivers": cfg.Panel.Drivers,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if info, err := host.InfoWithContext(ctx); err == nil {
		fields["host"] = info.Hostname
		fields["platform"] = info.Platform + " " + info.PlatformVersion
		fields["kernel"] = info.KernelVersion
	}

	l.WithFields(fields).Info("linkmon starting")
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
