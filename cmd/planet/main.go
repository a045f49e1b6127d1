package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/config"
	"github.com/Carmen-Shannon/oxy-planet/engine"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	flags := pflag.NewFlagSet("planet", pflag.ExitOnError)
	configDir := flags.String("config", ".", "directory containing config.yaml")
	flags.String("texture", "", "planet texture URL or file path")
	flags.String("log-level", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	_ = flags.Parse(os.Args[1:])

	_ = viper.BindPFlag("planet.texture", flags.Lookup("texture"))
	_ = viper.BindPFlag("logLevel", flags.Lookup("log-level"))

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planet: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.LogLevel, os.Stderr)

	var w window.Window
	if cfg.Window.Visible {
		w = window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
			window.WithAttribute(engine.TextureAttribute, cfg.Planet.Texture),
		)
	}

	eng := engine.Mount(w,
		engine.WithLogger(logger),
		engine.WithStars(cfg.Stars.Count, cfg.Stars.Extent),
		engine.WithBreakpoint(cfg.Viewport.Breakpoint),
		engine.WithTickRate(cfg.Render.FPS),
		engine.WithMSAA(renderer.ParseMSAA(cfg.Render.MSAA)),
		engine.WithVSync(cfg.Render.VSync),
		engine.WithProfiling(cfg.Render.Profiling),
	)
	if eng == nil {
		logger.Info().Msg("window disabled, nothing to render")
		return
	}

	eng.Run()
	if err := w.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing window")
	}
}
