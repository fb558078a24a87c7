// Command mandelrender renders a view headlessly: it builds an engine,
// applies a command script and writes the result as PNG or JPEG.
//
// Usage:
//
//	mandelrender --commands "zoom-in*20,pan-left*4,increase-budget" -o out.png
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/cli"
	"github.com/gogpu/mandel/internal/export"
)

type renderFlags struct {
	view       cli.ViewFlags
	commands   string
	out        string
	caption    bool
	thumbWidth int
	list       bool
}

func mainCmd() *cobra.Command {
	f := &renderFlags{
		view: cli.DefaultViewFlags(800, 600),
		out:  "mandel.png",
	}

	cmd := &cobra.Command{
		Use:   "mandelrender",
		Short: "Render a Mandelbrot view to PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	f.view.Register(cmd)
	cmd.Flags().StringVar(&f.commands, "commands", "", `comma-separated commands, "name*N" repeats`)
	cmd.Flags().StringVarP(&f.out, "out", "o", f.out, "output path (.png, .jpg)")
	cmd.Flags().BoolVar(&f.caption, "caption", false, "draw the view parameters along the bottom edge")
	cmd.Flags().IntVar(&f.thumbWidth, "thumb-width", 0, "scale the output to this width (0 = native)")
	cmd.Flags().BoolVar(&f.list, "list", false, "print the command names and exit")
	return cmd
}

func run(cmd *cobra.Command, f *renderFlags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if f.list {
		for _, c := range mandel.Commands() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	}

	log := cli.SetupLogging(f.view.Verbose)

	script, err := cli.ParseScript(f.commands)
	if err != nil {
		return err
	}

	start := time.Now()
	e, err := f.view.NewEngine()
	if err != nil {
		return err
	}

	computed := e.Stats().Computed
	for _, c := range script {
		e.Apply(c)
		computed += e.Stats().Computed
	}

	opts := export.Options{Width: f.thumbWidth}
	if f.caption {
		opts.Caption = f.view.Info(e).Caption(language.English)
	}
	img, err := export.Render(e.Snapshot(), opts)
	if err != nil {
		return err
	}
	if err := export.Save(f.out, img); err != nil {
		return err
	}

	vp := e.Viewport()
	log.Info("render done", "out", f.out, "commands", len(script), "duration", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d commands, %s pixels evaluated, budget %s, zoom %g\n",
		f.out, len(script),
		export.FormatCount(language.English, computed),
		export.FormatCount(language.English, vp.Budget),
		vp.Zoom)
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
