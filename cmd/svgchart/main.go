// Command svgchart draws the shapes listed in a TOML scene file
// into an SVG document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgchart/svgdriver"
	"github.com/benoitkugler/svgchart/svgtext"
)

type options struct {
	scene   string
	config  string
	output  string
	verbose bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "svgchart: %v\n", err)
		os.Exit(2)
	}
	if opts.verbose {
		svgdriver.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "svgchart: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: svgchart -scene scene.toml [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.scene, "scene", "", "TOML file listing the shapes to draw")
	flag.StringVar(&opts.config, "config", "", "TOML file with the driver options")
	flag.StringVar(&opts.output, "o", "", "output file, standard output if empty")
	flag.BoolVar(&opts.verbose, "v", false, "log debug messages to standard error")
	flag.Parse()

	if opts.scene == "" {
		flag.Usage()
		return options{}, errors.New("missing -scene")
	}
	return opts, nil
}

func run(opts options) error {
	driverOpts := svgdriver.DefaultOptions()
	if opts.config != "" {
		var err error
		if driverOpts, err = svgdriver.LoadOptions(opts.config); err != nil {
			return err
		}
	}
	sc, err := loadScene(opts.scene)
	if err != nil {
		return err
	}

	d := svgdriver.New(driverOpts)
	if err := render(d, sc); err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err = d.WriteTo(out)
	return err
}

// render draws the scene and finalizes the document. Texts which
// do not fit are reported but do not stop the rendering.
func render(d *svgdriver.Driver, sc scene) error {
	for i, s := range sc.Shapes {
		if _, err := s.draw(d); err != nil {
			if errors.Is(err, svgtext.ErrTextDoesNotFit) {
				fmt.Fprintf(os.Stderr, "svgchart: shape %d: %v\n", i+1, err)
				continue
			}
			return fmt.Errorf("shape %d (%s): %w", i+1, s.Kind, err)
		}
	}
	return d.Finalize()
}
