package backend

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/cockroachdb/errors"
)

// Runner executes an external program and waits for it to exit.
type Runner interface {
	// Run runs the program at path with args and returns its exit code.  The
	// error is only non-nil if the program could not be started or waited on:
	// a program that runs and exits non-zero is not an error.
	Run(path string, args []string) (int, error)
}

// ExecRunner runs programs as child processes of the current process.  The
// standard error output of the program is reported at the verbose log level.
type ExecRunner struct{}

func (ExecRunner) Run(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)

	stderrBuff := bytes.Buffer{}
	cmd.Stderr = &stderrBuff

	err := cmd.Run()

	if msg := strings.TrimSpace(stderrBuff.String()); msg != "" {
		report.ReportVerbose("%s:\n%s", path, msg)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// We were able to run the program, but it failed.
			return exitErr.ExitCode(), nil
		}

		// Some other error: probably couldn't find the program.
		return -1, err
	}

	return 0, nil
}

// RunnerFunc adapts an ordinary function to the Runner interface.
type RunnerFunc func(path string, args []string) (int, error)

func (f RunnerFunc) Run(path string, args []string) (int, error) {
	return f(path, args)
}
