// cmd/linkmon/panel.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tamzrod/linkmon/internal/config"
	"github.com/tamzrod/linkmon/internal/panel"
	panelmodbus "github.com/tamzrod/linkmon/internal/panel/modbus"
	"github.com/tamzrod/linkmon/internal/panel/term"
	"github.com/tamzrod/linkmon/internal/panel/ws"
)

// buildPanel opens every configured panel driver and returns them as one
// device plus a closer for the lot.
func buildPanel(cfg *config.Config) (panel.Tee, func(), error) {
	var (
		tee     panel.Tee
		closers []func()
	)

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for _, name := range cfg.Panel.Drivers {
		switch name {

		case config.DriverTerm:
			p, err := term.New(os.Stdout)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			tee = append(tee, p)

		case config.DriverModbus:
			mc := cfg.Panel.Modbus
			cli, err := panelmodbus.Dial(panelmodbus.Config{
				Endpoint: mc.Endpoint,
				UnitID:   mc.UnitID,
				Timeout:  ms(mc.TimeoutMs),
			})
			if err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("modbus panel %s: %w", mc.Endpoint, err)
			}
			closers = append(closers, func() { _ = cli.Close() })

			p, err := panelmodbus.New(cli, mc.BaseAddr)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			tee = append(tee, p)

		case config.DriverWS:
			srv := ws.New(cfg.Panel.WS.Listen, nil)
			srv.Start()
			closers = append(closers, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			})
			tee = append(tee, srv)

		default:
			closeAll()
			return nil, nil, fmt.Errorf("unknown panel driver %q", name)
		}
	}

	return tee, closeAll, nil
}
