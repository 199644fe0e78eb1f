package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stdout receives all console output; tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleVersion     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconPin     = "●"
)

const ruleWidth = 50

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconError.Render(iconError)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printTitle prints a heading framed by rules.
func printTitle(title string) {
	rule := StyleDim.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintln(stdout, rule)
	fmt.Fprintln(stdout, StyleTitle.Render(title))
	fmt.Fprintln(stdout, rule)
}

// =============================================================================
// Progress Output
// =============================================================================

// printCheck starts a progress line without a trailing newline.
func printCheck(index, total int, artifact string) {
	fmt.Fprint(stdout, StyleDim.Render(fmt.Sprintf("[%d/%d]", index, total))+" Checking "+StyleValue.Render(artifact)+"...")
}

// printFound completes a progress line with the resolved version.
func printFound(version string) {
	fmt.Fprintln(stdout, " "+styleIconSuccess.Render(iconSuccess)+" "+StyleSuccess.Render(version))
}

// printNotFound completes a progress line for an artifact without a version.
func printNotFound() {
	fmt.Fprintln(stdout, " "+styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render("No stable version found"))
}

// =============================================================================
// Summary Output
// =============================================================================

// printVersionGroup prints one version with its member artifacts.
func printVersionGroup(version string, artifacts []string) {
	fmt.Fprintf(stdout, "%s %s %s\n",
		styleVersion.Render(iconPin),
		styleVersion.Render("Version "+version)+":",
		StyleNumber.Render(fmt.Sprintf("%d artifacts", len(artifacts))))
	for _, a := range artifacts {
		fmt.Fprintln(stdout, "   - "+a)
	}
	fmt.Fprintln(stdout)
}

// printBlock prints preformatted text as-is.
func printBlock(text string) {
	fmt.Fprint(stdout, text)
}

// printFile prints a file output line.
func printFile(label, path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleDim.Render(label+":")+" "+StyleValue.Render(path))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(stdout)
}
