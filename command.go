package mandel

import (
	"fmt"
	"strings"
)

// Command is one of the eight discrete engine commands.
type Command int

// Commands in the order hosts usually list them.
const (
	CmdPanUp Command = iota
	CmdPanDown
	CmdPanLeft
	CmdPanRight
	CmdZoomIn
	CmdZoomOut
	CmdIncreaseBudget
	CmdDecreaseBudget

	// cmdCount is the number of valid commands.
	cmdCount
)

// cmdNone marks Stats from construction, before any command ran.
const cmdNone Command = -1

var commandNames = [cmdCount]string{
	CmdPanUp:          "pan-up",
	CmdPanDown:        "pan-down",
	CmdPanLeft:        "pan-left",
	CmdPanRight:       "pan-right",
	CmdZoomIn:         "zoom-in",
	CmdZoomOut:        "zoom-out",
	CmdIncreaseBudget: "increase-budget",
	CmdDecreaseBudget: "decrease-budget",
}

// Commands returns all valid commands.
func Commands() []Command {
	cmds := make([]Command, cmdCount)
	for i := range cmds {
		cmds[i] = Command(i)
	}
	return cmds
}

// String returns the kebab-case name of the command.
func (c Command) String() string {
	if c == cmdNone {
		return "init"
	}
	if c < 0 || c >= cmdCount {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand parses a command name as produced by String.
// Matching ignores case and surrounding space.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("mandel: unknown command %q", s)
}

// Apply runs command c. Unknown commands are ignored.
func (e *Engine) Apply(c Command) {
	switch c {
	case CmdPanUp:
		e.Pan(PanUp)
	case CmdPanDown:
		e.Pan(PanDown)
	case CmdPanLeft:
		e.Pan(PanLeft)
	case CmdPanRight:
		e.Pan(PanRight)
	case CmdZoomIn:
		e.Zoom(ZoomIn)
	case CmdZoomOut:
		e.Zoom(ZoomOut)
	case CmdIncreaseBudget:
		e.AdjustBudget(BudgetIncrease)
	case CmdDecreaseBudget:
		e.AdjustBudget(BudgetDecrease)
	}
}
