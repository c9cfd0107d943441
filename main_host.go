//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"slicer/app"
	"slicer/hal"
)

func main() {
	cfg := hal.HeadlessConfig{
		Host: hal.HostConfig{
			Width:  app.DefaultConfig.Display.ScreenWidth,
			Height: app.DefaultConfig.Display.ScreenHeight,
		},
	}
	appCfg := app.DefaultConfig

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Host.SimulateBus, "bus-delay", true, "Delay each transfer by its wire time.")
	flag.BoolVar(&appCfg.Notify, "notify", false, "Wait for transfers on completion notifications instead of spinning.")
	flag.Uint64Var(&appCfg.ReportEvery, "report", appCfg.ReportEvery, "Log a frame report every N frames (0 = never).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, cfg.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
