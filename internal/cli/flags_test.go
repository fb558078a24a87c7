package cli

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
)

func TestViewFlags_Register(t *testing.T) {
	f := DefaultViewFlags(64, 48)
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.Register(cmd)

	cmd.SetArgs([]string{"--zoom", "32", "--center-re", "-0.5", "--budget", "700", "-v"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if f.Zoom != 32 || f.CenterRe != -0.5 || f.Budget != 700 || !f.Verbose {
		t.Errorf("flags = %+v", f)
	}
	if f.Width != 64 || f.Height != 48 {
		t.Errorf("size = %dx%d, want defaults 64x48", f.Width, f.Height)
	}
}

func TestViewFlags_NewEngine(t *testing.T) {
	tests := []struct {
		name    string
		julia   string
		family  string
		wantErr bool
	}{
		{"mandelbrot", "", "mandelbrot", false},
		{"julia", "-0.8+0.156i", "julia -0.8+0.156i", false},
		{"bad julia", "nope", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultViewFlags(32, 24)
			f.Zoom = 8
			f.Julia = tt.julia

			e, err := f.NewEngine()
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := f.Family(); got != tt.family {
				t.Errorf("Family() = %q, want %q", got, tt.family)
			}
			info := f.Info(e)
			if info.Width != 32 || info.Budget != mandel.DefaultBudget {
				t.Errorf("Info() = %+v", info)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	orig := mandel.Logger()
	t.Cleanup(func() { mandel.SetLogger(orig) })

	SetupLogging(true)
	if !mandel.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logging should enable debug")
	}

	SetupLogging(false)
	if mandel.Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("quiet logging should not enable info")
	}
}
