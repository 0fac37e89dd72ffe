package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/config"
	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/logging"
	"github.com/ironsheep/image-editor-mcp/internal/render"
	"github.com/ironsheep/image-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "image-editor-mcp - MCP server for interactive image editing")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: image-editor-mcp [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintf(out, "  %s=debug    Enable debug logging\n", config.EnvLogLevel)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(out, "Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "Print version information")
		configPath  = flag.String("config", "", "Path to a JSON config file")
		logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
		panelWidth  = flag.Int("panel-width", -1, "Display panel width (0 shows the image at 1:1)")
		panelHeight = flag.Int("panel-height", -1, "Display panel height (0 shows the image at 1:1)")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion || flag.Arg(0) == "version" {
		fmt.Printf("image-editor-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	cfg, cfgErr := config.Load(*configPath)
	cfg.ApplyEnv()
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *panelWidth >= 0 {
		cfg.PanelWidth = *panelWidth
	}
	if *panelHeight >= 0 {
		cfg.PanelHeight = *panelHeight
	}
	_ = cfg.Validate()

	// Logs go to stderr; stdout is the MCP protocol channel
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, level)
	if cfgErr != nil {
		logger.Warn("config not loaded, using defaults", "path", *configPath, "error", cfgErr)
	}
	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	session := editor.New(
		editor.WithLogger(logger.With("component", "editor")),
		editor.WithPanelSize(cfg.PanelWidth, cfg.PanelHeight),
		editor.WithJPEGQuality(cfg.JPEGQuality),
		editor.WithAutoOrient(cfg.AutoOrient),
	)

	style := render.Style{
		Background:   cfg.BackgroundColor,
		Marker:       cfg.MarkerColor,
		MarkerRadius: cfg.MarkerRadius,
		Labels:       cfg.PointLabels,
	}

	srv := server.New(session,
		server.WithLogger(logger.With("component", "server")),
		server.WithStyle(style),
		server.WithVersion(Version),
	)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
