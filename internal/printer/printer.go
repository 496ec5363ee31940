package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Users can disable color with the NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Printf("✓ %s", msg)
	} else {
		green.Print(msg)
	}
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Printf("⚠️  %s", msg)
	} else {
		yellow.Print(msg)
	}
}

// Step prints a step message with emphasis
func Step(format string, a ...any) {
	cyan.Printf("→ %s", fmt.Sprintf(format, a...))
}

// Error prints title, explanation and suggestions to stderr and returns an
// error carrying only the title, for Cobra.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)
	fmt.Fprintf(os.Stderr, "%s\n", explanation)

	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(os.Stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(os.Stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

// Board draws a 9x9 grid with box separators. Cells in highlight are drawn
// in cyan, occupied cells as '#', free cells as '.'.
func Board(w io.Writer, cells [9][9]bool, highlight map[[2]int]bool) {
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			faint.Fprintln(w, "------+-------+------")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				faint.Fprint(w, "| ")
			}
			switch {
			case highlight[[2]int{r, c}]:
				cyan.Fprint(w, "@ ")
			case cells[r][c]:
				fmt.Fprint(w, "# ")
			default:
				faint.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
}

// Shape draws a shape rendered as "##/#." rows, one row per line.
func Shape(w io.Writer, rows string) {
	for _, row := range strings.Split(rows, "/") {
		green.Fprintln(w, strings.ReplaceAll(row, ".", " "))
	}
}

// Println prints a plain message
func Println(a ...any) {
	fmt.Println(a...)
}
