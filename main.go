package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rook-computer/artwork/internal/app"
	"github.com/rook-computer/artwork/internal/feature"
	"github.com/rook-computer/artwork/internal/preview"
	"github.com/spf13/pflag"
)

const envStdioLog = "ARTWORK_STDIO_LOG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup happens before main exits:
// 0 on success, 1 when rendering fails, 2 on configuration errors.
func run(args []string, stdout, stderr io.Writer) int {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}

	cfg := defaults
	var (
		debug    bool
		logFile  string
		stdioLog string
	)
	flags := pflag.NewFlagSet("artwork", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&cfg.Width, "width", defaults.Width, "Output image width; also configurable via "+app.EnvWidth)
	flags.IntVar(&cfg.Height, "height", defaults.Height, "Output image height; also configurable via "+app.EnvHeight)
	flags.StringVar(&cfg.AssetsDir, "assets-dir", defaults.AssetsDir, "Directory holding screenshots and receiving artwork; also configurable via "+app.EnvAssetsDir)
	flags.StringVar(&cfg.FeaturesPath, "features", defaults.FeaturesPath, "JSON feature list (default: built-in list); also configurable via "+app.EnvFeatures)
	flags.StringArrayVar(&cfg.FontPaths, "font", nil, "Font file to try before the default candidates (repeatable)")
	flags.StringVar(&cfg.PreviewDevice, "preview-fb", "", "Show each page on this framebuffer device, e.g. /dev/fb0")
	flags.DurationVar(&cfg.PreviewDelay, "preview-delay", defaults.PreviewDelay, "How long each page stays on the framebuffer")
	flags.BoolVar(&debug, "debug", false, "Log each rendering step")
	flags.StringVar(&logFile, "log-file", "", "Append log lines to this file instead of stderr")
	flags.StringVar(&stdioLog, "stdio-log", "", "Redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if stdioLog == "" {
		stdioLog = os.Getenv(envStdioLog)
	}
	if stdioLog != "" {
		if err := redirectStdIO(stdioLog); err != nil {
			fmt.Fprintln(stderr, "stdio log redirect error:", err)
		}
	}

	logOut := stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(stderr, "log file open error:", err)
			return 2
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewFileLogger(logOut, debug)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}
	specs, err := feature.Load(cfg.FeaturesPath)
	if err != nil {
		fmt.Fprintln(stderr, "features error:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, logger, stdout)
	if cfg.PreviewDevice != "" {
		fbPreview, err := preview.OpenFramebuffer(cfg.PreviewDevice, cfg.PreviewDelay)
		if err != nil {
			logger.Errorf("preview", "framebuffer %s unavailable, preview disabled: %v", cfg.PreviewDevice, err)
		} else {
			defer fbPreview.Close()
			a.Preview = fbPreview
		}
	}

	if err := a.Run(ctx, specs); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
