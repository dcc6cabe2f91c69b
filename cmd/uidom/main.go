package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-uidom/pkg/dom"
	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/preview"
	"github.com/goliatone/go-uidom/pkg/toolkit"
	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

type options struct {
	file         string
	config       string
	format       string
	output       string
	pick         string
	stubHandlers bool
	force        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "markup file to load (.xml or .json)")
	flag.StringVar(&opts.config, "config", "", "builder configuration file (YAML or JSON)")
	flag.StringVar(&opts.format, "format", "text", "output format: text, html or json")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.StringVar(&opts.pick, "pick", "", "directory to choose a markup file from interactively")
	flag.BoolVar(&opts.stubHandlers, "stub-handlers", false, "resolve unknown handler names to logging stubs")
	flag.BoolVar(&opts.force, "force", false, "overwrite the output file without asking")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(opts, surveyPrompter{}, os.Stdout, logger); err != nil {
		if errors.Is(err, errAborted) {
			logger.Println("Aborted")
			os.Exit(1)
		}
		logger.Fatalf("Failed to build UI: %v", err)
	}
}

func run(opts options, prompts prompter, stdout io.Writer, logger *log.Logger) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	switch format {
	case "text", "html", "json":
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	path := strings.TrimSpace(opts.file)
	if path == "" && opts.pick != "" {
		picked, err := pickMarkup(opts.pick, prompts)
		if err != nil {
			return err
		}
		path = picked
	}
	if path == "" {
		return errors.New("a markup file is required (use -file or -pick)")
	}

	cfg := dom.DefaultConfig()
	if opts.config != "" {
		loaded, err := dom.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	node, err := markup.LoadFile(path, markup.WithNameAttribute(cfg.NameNamespace, cfg.NameLocal))
	if err != nil {
		return err
	}

	var out bytes.Buffer
	var diags *dom.CollectReporter
	if format == "json" {
		if err := preview.JSON(&out, node); err != nil {
			return err
		}
	} else {
		tk := headless.New()
		diags = &dom.CollectReporter{}
		controllerOptions := []dom.Option{
			dom.WithFactory(tk),
			dom.WithConfig(cfg),
			dom.WithReporter(dom.Tee(diags, &dom.LogReporter{Logger: logger})),
		}
		if opts.stubHandlers {
			controllerOptions = append(controllerOptions, dom.WithHandlerFallback(stubHandler(logger)))
		}

		ctrl := dom.New(controllerOptions...)
		if _, err := ctrl.LoadNode(node); err != nil {
			return err
		}

		if format == "html" {
			err = preview.HTML(&out, tk.Roots(), preview.WithTitle(filepath.Base(path)), preview.WithSource(path))
		} else {
			err = preview.Text(&out, tk.Roots())
		}
		if err != nil {
			return err
		}
	}

	if err := writeOutput(opts, prompts, stdout, out.Bytes()); err != nil {
		return err
	}

	if diags != nil {
		if count := len(diags.Diagnostics()); count > 0 {
			logger.Printf("%d diagnostic(s) reported while building %s", count, path)
		}
	}
	return nil
}

func stubHandler(logger *log.Logger) func(name string) (toolkit.Handler, bool) {
	return func(name string) (toolkit.Handler, bool) {
		return func(args ...any) {
			logger.Printf("handler %s called with %d argument(s)", name, len(args))
		}, true
	}
}

func writeOutput(opts options, prompts prompter, stdout io.Writer, payload []byte) error {
	if opts.output == "" {
		_, err := stdout.Write(payload)
		return err
	}

	if _, err := os.Stat(opts.output); err == nil && !opts.force {
		ok, err := prompts.Confirm(fmt.Sprintf("%s exists. Overwrite?", opts.output), false)
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	}

	if err := os.WriteFile(opts.output, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "Preview written to %s\n", opts.output)
	return nil
}

// pickMarkup lets the user choose one of the markup files under dir.
func pickMarkup(dir string, prompts prompter) (string, error) {
	files, err := discoverMarkup(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no .xml or .json files found in %s", dir)
	}
	if len(files) == 1 {
		return files[0], nil
	}
	return prompts.Select("Markup file", files)
}

func discoverMarkup(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if _, err := markup.FormatOf(path); err == nil {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
