package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/holoplot/go-evdev"

	"numpadd/internal/pkg/backlight"
	"numpadd/internal/pkg/keyboard"
	"numpadd/internal/pkg/layout"
	"numpadd/internal/pkg/logg"
	"numpadd/internal/pkg/numpad"
	"numpadd/internal/pkg/touchpad"
)

var log = logg.GetLogger()

var (
	configPath = flag.String("config", "/etc/numpadd/numpadd.config", "configuration file path")
	model      = flag.String("model", "", "touchpad model, overrides the config file")
	percentKey = flag.String("percentkey", "", "substitute key for the percentage slot, eg. KEY_5")
	logLevel   = flag.Int("loglevel", 2,
		"logging level, each level enables additional information class (0-4)\n"+
			"0: errors\n"+
			"1: side-effect warnings\n"+
			"2: lifecycle info\n"+
			"3: key events\n"+
			"4: debug (positions, classification misses)",
	)
	nocolor = flag.Bool("nocolor", false, "disable log coloring")
)

// watchDeviceNode cancels the run when the touchpad event node disappears,
// eg. on suspend or driver unbind, so the shutdown path still runs against
// a consistent state.
func watchDeviceNode(ctx context.Context, path string, cancel func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Info(fmt.Sprintf("device watch unavailable: %v", err), logg.Warning)
		return
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Info(fmt.Sprintf("device watch unavailable: %v", err), logg.Warning)
		watcher.Close()
		return
	}

	go func() {
		<-ctx.Done()
		watcher.Close()
	}()

	go func() {
		for event := range watcher.Events {
			if event.Name == path && event.Op&fsnotify.Remove == fsnotify.Remove {
				log.Info("touchpad device node removed", logg.Info)
				cancel()
				return
			}
		}
	}()
}

func run() error {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *percentKey != "" {
		cfg.PercentageKey = *percentKey
	}

	lay, err := layout.Select(cfg.Model, cfg.LayoutDir)
	if err != nil {
		return err
	}

	substitute, ok := evdev.KEYFromString[cfg.PercentageKey]
	if !ok {
		return fmt.Errorf("unknown percentage key %q", cfg.PercentageKey)
	}

	info, err := touchpad.Detect(lay.TryTimes, lay.TrySleep)
	if err != nil {
		return err
	}

	pad, err := touchpad.Open(info.EventPath())
	if err != nil {
		return err
	}
	defer pad.Close()

	bounds, err := pad.Bounds()
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("touchpad min-max: x %d-%d, y %d-%d",
		bounds.MinX, bounds.MaxX, bounds.MinY, bounds.MaxY), logg.Debug)

	vkbd, err := keyboard.New("numpadd virtual keyboard")
	if err != nil {
		return err
	}
	defer vkbd.Close()

	bus := cfg.I2CBus
	if bus < 0 {
		bus = info.I2CBus
	}
	if bus < 0 {
		return fmt.Errorf("touchpad i2c bus not detected, set it in %s", *configPath)
	}
	light, err := backlight.New(bus, cfg.I2CAddress)
	if err != nil {
		return err
	}
	defer light.Close()

	core := numpad.New(lay, bounds, vkbd, pad, light, substitute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		log.Info(fmt.Sprintf("signal received: %v", sig), logg.Info)
		cancel()
	}()

	watchDeviceNode(ctx, info.EventPath(), cancel)

	log.Info(fmt.Sprintf("numpadd started, model %s", cfg.Model), logg.Info)
	core.Run(ctx, pad, cfg.PollInterval)
	core.Shutdown()
	log.Info("numpadd stopped", logg.Info)
	return nil
}

func main() {
	flag.Parse()

	done := make(chan struct{})
	go func() {
		printLogs(*nocolor, *logLevel)
		close(done)
	}()

	err := run()
	close(logg.Messages)
	<-done

	if err != nil {
		fmt.Fprintf(os.Stderr, "numpadd: %v\n", err)
		os.Exit(1)
	}
}
