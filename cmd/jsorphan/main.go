package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/orphanlabs/jsorphan/internal/output"
	"github.com/orphanlabs/jsorphan/internal/progress"
	"github.com/orphanlabs/jsorphan/internal/scanner"
	"github.com/orphanlabs/jsorphan/pkg/analyzer/refs"
	"github.com/orphanlabs/jsorphan/pkg/config"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

// getRoot returns the root directory from positional args, defaulting to ".".
func getRoot(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

func main() {
	app := &cli.App{
		Name:    "jsorphan",
		Usage:   "Find JavaScript files referenced nowhere in a project",
		Version: version,
		Description: `jsorphan scans a directory tree and lists JavaScript files that are
referenced nowhere - not in any HTML <script> tag and not in any JS
import/require. The scan is lexical: specifiers built at runtime are
missed, and matching is by basename only.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"JSORPHAN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown, toon",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Report skipped files on stderr",
			},
			&cli.BoolFlag{
				Name:  "fail-on-unused",
				Usage: "Exit with code 2 when unused files are found",
			},
		},
		ArgsUsage: "[path]",
		Action:    runScan,
		Commands: []*cli.Command{
			scanCmd(),
			initCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan a directory tree for unused JavaScript files",
		ArgsUsage: "[path]",
		Action:    runScan,
	}
}

func runScan(c *cli.Context) error {
	root := getRoot(c)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("cannot read root directory %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", absRoot)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	verbose := cfg.Output.Verbose || c.Bool("verbose")
	failOnUnused := cfg.Output.FailOnUnused || c.Bool("fail-on-unused")
	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}

	scan := scanner.NewScanner(cfg)
	spinner := progress.NewSpinner("Scanning files...")
	htmlFiles, err := scan.ScanDir(absRoot, cfg.Markup.Extension)
	if err != nil {
		spinner.FinishError(err)
		return fmt.Errorf("failed to scan directory %s: %w", absRoot, err)
	}
	jsFiles, err := scan.ScanDir(absRoot, cfg.Resolve.Extensions...)
	if err != nil {
		spinner.FinishError(err)
		return fmt.Errorf("failed to scan directory %s: %w", absRoot, err)
	}
	spinner.FinishSuccess()

	analyzer := refs.New(
		refs.WithMarkup(cfg.Markup.ScriptTag, cfg.Markup.SrcAttr),
		refs.WithExtensions(cfg.Resolve.Extensions...),
		refs.WithDefaultExtension(cfg.Resolve.DefaultExtension),
	)

	var onError func(path string, err error)
	if verbose {
		onError = func(path string, err error) {
			fmt.Fprintf(os.Stderr, "WARN: skipping %s: %v\n", path, err)
		}
	}

	tracker := progress.NewTracker("Extracting references...", len(htmlFiles)+len(jsFiles))
	references := analyzer.CollectReferences(htmlFiles, jsFiles, tracker.Tick, onError)
	tracker.FinishSuccess()

	partition := refs.Resolve(jsFiles, references)
	report := refs.NewReport(absRoot, len(htmlFiles), partition)

	formatter, err := output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(report); err != nil {
		return err
	}

	if failOnUnused && len(partition.Unused) > 0 {
		return cli.Exit(fmt.Sprintf("%d unused JavaScript files found", len(partition.Unused)), 2)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}
