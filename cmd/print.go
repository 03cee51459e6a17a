package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// markdownStyle follows the stored theme; OpenStore sets it.
var markdownStyle = "dark"

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal (a pipe, a redirect) the raw markdown is printed instead.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, markdownStyle)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
