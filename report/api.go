package report

import (
	"fmt"
	"os"
	"time"
)

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// translator: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// translation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing input
// file, a malformed config file, an unknown target, etc.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportError reports a non-fatal error under the given tag.
func ReportError(tag, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayError(tag, fmt.Sprintf(message, args...))
	}
}

// ReportWarning reports a warning under the given tag.
func ReportWarning(tag, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelError {
		displayWarning(tag, fmt.Sprintf(message, args...))
	}
}

// ReportInfo reports a tagged informational message.  It is displayed at every
// log level except silent.
func ReportInfo(tag, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}

// ReportVerbose reports an informational message.  It is only displayed at the
// verbose log level.
func ReportVerbose(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayVerbose(fmt.Sprintf(message, args...))
	}
}

// -----------------------------------------------------------------------------

// ReportPhase marks the beginning of a new translation phase.  The previous
// phase, if any, is ended first.
func ReportPhase(name string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.phase != "" && rep.logLevel == LogLevelVerbose {
		displayEndPhase(rep.phase, time.Since(rep.phaseStart), !rep.isErr)
	}

	rep.phase = name
	rep.phaseStart = time.Now()

	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(name)
	}
}

// ReportTranslationFinished ends the current phase and displays the concluding
// message of translation.
func ReportTranslationFinished(outputPath string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.phase != "" && rep.logLevel == LogLevelVerbose {
		displayEndPhase(rep.phase, time.Since(rep.phaseStart), !rep.isErr)
	}
	rep.phase = ""

	if rep.logLevel == LogLevelVerbose {
		displayTranslationFinished(!rep.isErr, outputPath)
	}
}
