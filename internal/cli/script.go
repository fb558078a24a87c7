package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/mandel"
)

// maxRepeat bounds "name*N" so a typo cannot queue millions of commands.
const maxRepeat = 10000

// ParseScript parses a comma-separated command list such as
// "zoom-in*5,pan-left,increase-budget". A "*N" suffix repeats a command N
// times. Blank entries are skipped.
func ParseScript(s string) ([]mandel.Command, error) {
	var cmds []mandel.Command
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, count := entry, 1
		if i := strings.LastIndexByte(entry, '*'); i >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(entry[i+1:]))
			if err != nil || n < 1 || n > maxRepeat {
				return nil, fmt.Errorf("invalid repeat count in %q", entry)
			}
			name, count = entry[:i], n
		}

		c, err := mandel.ParseCommand(name)
		if err != nil {
			return nil, err
		}
		for range count {
			cmds = append(cmds, c)
		}
	}
	return cmds, nil
}
