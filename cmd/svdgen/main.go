// Command svdgen renders one or more CMSIS-SVD device descriptions into
// packed-register source text. Argument parsing, file I/O, and the loader
// call all live here so the svd/svdemit packages stay a pure library.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/tinyrange/svdgen/internal/batchcfg"
	"github.com/tinyrange/svdgen/internal/svd"
	"github.com/tinyrange/svdgen/internal/svdemit"
	"github.com/tinyrange/svdgen/internal/svdxml"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "svdgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		in     = flag.String("in", "", "path to a single SVD file")
		out    = flag.String("out", "", "output path for -in (defaults to stdout)")
		config = flag.String("config", "", "path to a batch svdgen.yaml config")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch {
	case *config != "":
		return runBatch(logger, *config)
	case *in != "":
		return runSingle(logger, *in, *out)
	default:
		return fmt.Errorf("one of -in or -config is required")
	}
}

func runSingle(logger *slog.Logger, in, out string) error {
	device, err := loadDevice(in)
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	logger.Info("emitting device", "name", device.Name, "version", device.NormalizedVersion(), "peripherals", len(device.Peripherals))
	return svdemit.Device(w, device)
}

func runBatch(logger *slog.Logger, configPath string) error {
	cfg, err := batchcfg.Load(configPath)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(len(cfg.Devices)))
	}

	for _, dev := range cfg.Devices {
		if err := emitOne(logger, dev); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}

func emitOne(logger *slog.Logger, dev batchcfg.Device) error {
	device, err := loadDevice(dev.Input)
	if err != nil {
		return err
	}

	f, err := os.Create(dev.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", dev.Output, err)
	}
	emitErr := svdemit.Device(f, device)
	closeErr := f.Close()
	if emitErr != nil {
		return emitErr
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", dev.Output, closeErr)
	}

	logger.Info("emitted device", "input", dev.Input, "output", dev.Output)
	return nil
}

func loadDevice(path string) (*svd.Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	device, err := svdxml.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return device, nil
}
