package main

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}

func newLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log-level")))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", viper.GetString("log-level"))
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// splitScriptArgs separates arguments for the CLI from arguments meant for
// the program, which follow "--".
func splitScriptArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, []string{}
	}
	return args[:dash], args[dash:]
}

// defaultScript is run when no file, --code or --stdin is given.
const defaultScript = "main.imp"

// getCode determines what code is to be processed. There are four
// possibilities: --code <code>, --stdin, a path as args[0], or
// defaultScript in the working directory. The second result is the
// filename, if any; both results are empty when there is no input at all.
func getCode(cmd *cobra.Command, args []string) (string, string, error) {
	codeFlagSet := cmd.Flags().Changed("code")
	stdinFlagSet, _ := cmd.Flags().GetBool("stdin")
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) || codeFlagSet && stdinFlagSet {
		return "", "", goerrors.New("multiple input sources specified")
	}
	if len(args) > 1 {
		return "", "", fmt.Errorf("expected one file, got %d (pass program arguments after --)", len(args))
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case !codeFlagSet:
		data, err := os.ReadFile(defaultScript)
		if goerrors.Is(err, fs.ErrNotExist) {
			return "", "", nil
		}
		if err != nil {
			return "", "", err
		}
		return string(data), defaultScript, nil
	}
	code, _ := cmd.Flags().GetString("code")
	return code, "", nil
}

var outputFormatsCompletion = []string{"json", "text", "yaml"}

// getOutput renders the value returned by @main. Nothing is printed unless
// an output format was requested.
func getOutput(result object.Object, format string) (string, error) {
	switch strings.ToLower(format) {
	case "":
		return "", nil
	case "text":
		if result == nil {
			return "", nil
		}
		return result.String(), nil
	case "json":
		var value any
		if result != nil {
			value = result.Interface()
		}
		output, err := marshalJSON(value)
		if err != nil {
			return "", err
		}
		return string(output), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func marshalJSON(value any) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(value, "", "  ")
	}
	return prettyjson.Marshal(value)
}

// marshal renders structured data for the tokens, ast and doc commands.
func marshal(value any, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := marshalJSON(value)
		return string(data), err
	case "yaml":
		data, err := yaml.Marshal(value)
		return strings.TrimRight(string(data), "\n"), err
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

// formatError renders an error with source context and hints.
func formatError(err error, useColor bool) string {
	return errors.NewFormatter(useColor).FormatError(err)
}
