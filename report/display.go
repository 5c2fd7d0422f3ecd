package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("internal compiler error")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("fatal error")
	ErrorColorFG.Println(" " + message)
	fmt.Println()
}

// displayError displays a tagged error message.
func displayError(tag, message string) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + message)
}

// displayWarning displays a tagged warning message.
func displayWarning(tag, message string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + message)
}

// displayInfo displays a tagged informational message.
func displayInfo(tag, message string) {
	SuccessStyleBG.Print(tag)
	SuccessColorFG.Println(" " + message)
}

// displayVerbose displays an informational message.
func displayVerbose(message string) {
	InfoColorFG.Println(message)
}

// -----------------------------------------------------------------------------

// displayBeginPhase displays the banner for the start of a phase.
func displayBeginPhase(name string) {
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(name) - 4
	if dashCount < 0 {
		dashCount = 0
	}

	fmt.Print("-- ")
	InfoColorFG.Print(name)
	fmt.Println(" " + strings.Repeat("-", dashCount))
}

// displayEndPhase displays the summary line for a finished phase.
func displayEndPhase(name string, elapsed time.Duration, ok bool) {
	if ok {
		SuccessColorFG.Printf("   %s done ", name)
	} else {
		ErrorColorFG.Printf("   %s failed ", name)
	}

	fmt.Printf("(%.3fs)\n", elapsed.Seconds())
}

// displayTranslationFinished displays the concluding message of translation.
func displayTranslationFinished(ok bool, outputPath string) {
	fmt.Println()

	if ok {
		SuccessStyleBG.Print("Translation Succeeded")
		SuccessColorFG.Println(" output written to " + outputPath)
	} else {
		ErrorStyleBG.Print("Translation Failed")
		fmt.Println()
	}
}
