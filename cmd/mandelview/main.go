// Command mandelview is an interactive Mandelbrot explorer.
//
// Keys:
//
//	arrows  pan
//	A / Z   zoom in / out
//	=       more iterations
//	`       fewer iterations
//	H       toggle the overlay
//	Esc     quit
package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/mandel/internal/cli"
)

func mainCmd() *cobra.Command {
	f := cli.DefaultViewFlags(800, 600)

	cmd := &cobra.Command{
		Use:   "mandelview",
		Short: "Explore the Mandelbrot set interactively",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			log := cli.SetupLogging(f.Verbose)
			e, err := f.NewEngine()
			if err != nil {
				return err
			}

			g := newGame(e, &f, log)
			ebiten.SetWindowSize(f.Width, f.Height)
			ebiten.SetWindowTitle("mandelview: " + f.Family())
			return ebiten.RunGame(g)
		},
	}
	f.Register(cmd)
	return cmd
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
