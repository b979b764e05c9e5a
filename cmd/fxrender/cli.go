package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/loader"
)

// newLogger returns a terminal logger at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCmd() *cobra.Command {
	var verbose bool
	logger := newLogger(os.Stderr, log.InfoLevel)

	root := &cobra.Command{
		Use:          "fxrender",
		Short:        "fxrender renders raster filter graphs to PNG",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			// Library diagnostics go through the same handler.
			fx.SetLogger(slog.New(logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(logger))
	root.AddCommand(newConfigCmd())
	return root
}

// renderOpts holds flags that override the scene file.
type renderOpts struct {
	output  string
	width   int
	height  int
	scale   float64
	quality string
}

func newRenderCmd(logger *log.Logger) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				cfg, err = LoadConfig(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
			}
			opts.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRender(cmd, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in user units")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in user units")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "device pixels per user unit")
	cmd.Flags().StringVarP(&opts.quality, "quality", "q", "", "rendering hint: default, quality or speed")
	return cmd
}

func (o renderOpts) apply(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("scale") {
		cfg.Scale = o.scale
	}
	if flags.Changed("quality") {
		cfg.Quality = o.quality
	}
}

func runRender(cmd *cobra.Command, cfg Config, logger *log.Logger) error {
	start := time.Now()
	ld := loader.New(loader.WithMaxSize(cfg.Image.MaxSize))

	scene, err := buildScene(cfg, ld)
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	logger.Debug("scene built", "bounds", scene.Bounds())

	out := render(cfg, scene)
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	s := ld.Cache().Stats()
	logger.Infof("Rendered %s %dx%d (%s)", cfg.Output, out.Rect.Dx(), out.Rect.Dy(), time.Since(start).Round(time.Millisecond))
	logger.Debug("image cache", "len", s.Len, "hits", s.Hits, "misses", s.Misses)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default scene as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteConfig(cmd.OutOrStdout(), DefaultConfig())
		},
	}
}
