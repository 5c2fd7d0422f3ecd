// Package cmd is the top-level driver of the translator: it parses command-line
// arguments, loads configuration and runs the translation phases.
package cmd

import (
	"os"

	"github.com/0dminnimda/OpenSYCL/common"
	"github.com/0dminnimda/OpenSYCL/llvm"
	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `sscp` CLI utility.  It returns the
// exit code of the process.
func Execute() int {
	// panics are bugs in the translator, not user errors
	defer func() {
		if x := recover(); x != nil {
			report.ReportICE("%v", x)
		}
	}()

	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI(common.ToolName, "sscp translates LLVM IR kernels into device backend binaries", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the translator log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	translateCmd := cli.AddSubcommand("translate", "translate an LLVM module to a backend binary", true)
	translateCmd.AddPrimaryArg("module-path", "the path to the LLVM bitcode or IR file", true)
	translateCmd.AddStringArg("output", "o", "the path of the produced binary", false)
	translateCmd.AddStringArg("config", "c", "the path to the config file", false)
	translateCmd.AddStringArg("kernels", "k", "comma-separated kernel entry point names", false)
	translateCmd.AddStringArg("target", "t", "the backend to translate for", false)
	translateCmd.AddFlag("verify-each", "ve", "verify the module after every optimization pass")
	translateCmd.AddFlag("debug-passes", "dp", "log every optimization pass as it runs")

	flavorCmd := cli.AddSubcommand("flavor", "flavor a textual LLVM module without translating it", true)
	flavorCmd.AddPrimaryArg("module-path", "the path to the LLVM IR file", true)
	flavorCmd.AddStringArg("output", "o", "the path of the flavored module", false)
	flavorCmd.AddStringArg("config", "c", "the path to the config file", false)
	flavorCmd.AddStringArg("kernels", "k", "comma-separated kernel entry point names", false)
	flavorCmd.AddStringArg("target", "t", "the backend to flavor for", false)

	cli.AddSubcommand("version", "print the translator version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportError("CLI Usage Error", "%s", err)
		return 1
	}

	report.InitReporter(report.LogLevelFromName(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "translate":
		return execTranslateCommand(subResult)
	case "flavor":
		return execFlavorCommand(subResult)
	case "version":
		report.ReportInfo("Version", "%s %s", common.ToolName, common.ToolVersion)
	}

	return 0
}

// execTranslateCommand executes the translate subcommand.
func execTranslateCommand(result *olive.ArgParseResult) int {
	d, err := newDriver(result)
	if err != nil {
		report.ReportFatal("failed to configure translation: %s", err)
	}

	opt := llvm.Optimizer{
		VerifyEach:   result.HasFlag("verify-each"),
		DebugLogging: result.HasFlag("debug-passes"),
	}

	if d.translate(opt) {
		return 0
	}

	return 1
}

// execFlavorCommand executes the flavor subcommand.
func execFlavorCommand(result *olive.ArgParseResult) int {
	d, err := newDriver(result)
	if err != nil {
		report.ReportFatal("failed to configure translation: %s", err)
	}

	if d.flavor() {
		return 0
	}

	return 1
}
