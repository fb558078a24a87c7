package mandel

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.panStep != 10 || o.zoomFactor != 1.1 || o.budgetStep != 500 || o.budgetFloor != 500 {
		t.Errorf("defaultOptions() = %+v", o)
	}
	if o.workers != 0 || o.julia != nil || o.logger != nil {
		t.Errorf("defaultOptions() = %+v, want zero workers, no julia, no logger", o)
	}
	if err := o.validate(); err != nil {
		t.Errorf("defaultOptions().validate() = %v", err)
	}
}

func TestOptions_Apply(t *testing.T) {
	l := slog.Default()
	o := defaultOptions()
	for _, opt := range []Option{
		WithPanStep(32),
		WithZoomFactor(2),
		WithBudgetStep(250),
		WithBudgetFloor(100),
		WithWorkers(3),
		WithJulia(complex(0.285, 0.01)),
		WithLogger(l),
	} {
		opt(&o)
	}

	if o.panStep != 32 {
		t.Errorf("panStep = %d, want 32", o.panStep)
	}
	if o.zoomFactor != 2 {
		t.Errorf("zoomFactor = %v, want 2", o.zoomFactor)
	}
	if o.budgetStep != 250 || o.budgetFloor != 100 {
		t.Errorf("budgetStep, budgetFloor = %d, %d, want 250, 100", o.budgetStep, o.budgetFloor)
	}
	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if o.julia == nil || *o.julia != complex(0.285, 0.01) {
		t.Errorf("julia = %v", o.julia)
	}
	if o.logger != l {
		t.Error("logger not set")
	}
}

func TestOptions_Engine(t *testing.T) {
	e, err := New(Config{Width: 64, Height: 64, Zoom: 32, Budget: 200},
		WithPanStep(16), WithZoomFactor(2), WithBudgetStep(50), WithBudgetFloor(150))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	e.PanDown()
	if got := e.Viewport().Center; got != complex(0, 0.5) {
		t.Errorf("Center after PanDown = %v, want (0+0.5i)", got)
	}
	if got := e.Stats().Computed; got != 16*64 {
		t.Errorf("PanDown Computed = %d, want %d", got, 16*64)
	}

	e.ZoomIn()
	if got := e.Viewport().Zoom; got != 64 {
		t.Errorf("Zoom = %v, want 64", got)
	}

	e.DecreaseBudget()
	if got := e.Viewport().Budget; got != 150 {
		t.Errorf("Budget = %d, want 150", got)
	}
	e.DecreaseBudget()
	if got := e.Viewport().Budget; got != 150 {
		t.Errorf("Budget below floor = %d, want 150", got)
	}
}
