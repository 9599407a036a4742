//go:build !js

/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/anima-backends/engine"
	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/platform/desktop"
	"github.com/spaghettifunk/anima-backends/engine/platform/null"
	"github.com/spaghettifunk/anima-backends/testbed"
	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.StringP("config", "c", config.DefaultPath, "path to the TOML configuration file")
	backend := flag.StringP("backend", "b", "", "platform backend, null or desktop (overrides the configuration)")
	logLevel := flag.String("log-level", "", "log level (overrides the configuration)")
	soundPath := flag.String("sound", "", "audio file (wav, mp3 or ogg) looped by the testbed")
	watch := flag.Bool("watch", true, "reload the configuration file when it changes")
	flag.Parse()

	cfg, configFound, err := loadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		core.LogFatal("invalid configuration: %s", err)
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		core.LogFatal("%s", err)
	}

	var sound []byte
	if *soundPath != "" {
		if sound, err = os.ReadFile(*soundPath); err != nil {
			core.LogFatal("failed to read sound: %s", err)
		}
	}

	system, err := newSystem(cfg)
	if err != nil {
		core.LogFatal("%s", err)
	}

	tb, err := testbed.NewTestGame(cfg, sound)
	if err != nil {
		core.LogFatal("%s", err)
	}

	e, err := engine.New(system, tb.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	if *watch && configFound {
		w, err := config.NewWatcher(*configPath, cfg)
		if err != nil {
			core.LogWarn("configuration will not be reloaded: %s", err)
		} else {
			e.WatchConfig(w)
		}
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		// capture sigterm and other system call here
		<-sigCh
		system.Exit()
	}()

	// run engine
	if err := e.Run(); err != nil {
		core.LogError("%s", err)
	}
	if err := e.Shutdown(); err != nil {
		core.LogError("%s", err)
	}
}

// loadConfig falls back to the defaults when the file does not exist.
func loadConfig(path string) (config.AppConfig, bool, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("%s not found, using the default configuration", path)
		return config.Default(), false, nil
	}
	return cfg, err == nil, err
}

func newSystem(cfg config.AppConfig) (platform.System, error) {
	switch cfg.Backend {
	case config.BackendNull:
		return null.New(), nil
	case config.BackendDesktop:
		return desktop.New(desktop.AudioOptions{
			SampleRate: cfg.Audio.SampleRate,
			Volume:     cfg.Audio.Volume,
			Buffer:     time.Duration(cfg.Audio.BufferMS) * time.Millisecond,
		}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
