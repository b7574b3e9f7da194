package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Nivolast/photo-collage/pkg/config"
	"github.com/Nivolast/photo-collage/internal/ui"
	"github.com/Nivolast/photo-collage/pkg/collage"
)

func main() {
	var settingsFile string
	var once bool
	var seed int64
	var verbose bool

	flag.StringVar(&settingsFile, "settings", config.DefaultFile, "path to the settings file (created with defaults if absent)")
	flag.BoolVar(&once, "once", false, "generate a single collage and exit without opening the display window")
	flag.Int64Var(&seed, "seed", 0, "random seed for photo placement (0 = clock)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	settings, err := config.Load(settingsFile)
	if err != nil {
		logger.Fatal("failed to load settings", "path", settingsFile, "err", err)
	}
	if err := settings.Validate(); err != nil {
		logger.Fatal("invalid settings", "err", err)
	}

	var gen *collage.Generator
	if seed != 0 {
		gen = collage.NewWithSeed(seed)
	} else {
		gen = collage.New()
	}
	gen.SetLogger(logger)

	ctx := context.Background()

	if once {
		if _, err := gen.Generate(ctx, settings); err != nil {
			logger.Fatal("collage generation failed", "err", err)
		}
		logger.Info("collage written", "path", gen.Output)
		return
	}

	ui.Run(ctx, gen, settings)
}
