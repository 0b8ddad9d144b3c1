package display

import (
	"fmt"
	"os"

	"github.com/stillcut/stillcut/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _   _ _ _  ____      _
/ ___|| |_(_) | |/ ___|   _| |_
\___ \| __| | | | |  | | | | __|
 ___) | |_| | | | |__| |_| | |_
|____/ \__|_|_|_|\____\__,_|\__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
