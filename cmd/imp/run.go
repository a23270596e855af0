package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudcmds/imp"
	"github.com/cloudcmds/imp/internal/lexer"
)

func runHandler(cmd *cobra.Command, args []string) error {
	fileArgs, scriptArgs := splitScriptArgs(cmd, args)
	code, filename, err := getCode(cmd, fileArgs)
	if err != nil {
		return err
	}
	if code == "" && filename == "" {
		if isTerminalIO() {
			return cmd.Help()
		}
		return fmt.Errorf("no program given: pass a file, --code or --stdin, or create %s", defaultScript)
	}
	scriptArgs = append([]string{programName(filename)}, scriptArgs...)

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()

	if display, _ := cmd.Flags().GetBool("display-tokens"); display {
		if err := printTokens(stdout, code, filename); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := getImpOptions(filename, scriptArgs, stdout)
	opts = append(opts, imp.WithLogger(logger))
	program, err := imp.Parse(ctx, code, opts...)
	if err != nil {
		return err
	}
	logger.Debug().Strs("functions", program.FunctionNames()).Msg("parsed")

	result, err := imp.Run(ctx, program, opts...)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	output, err := getOutput(result, format)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(stdout, output)
	}
	return nil
}

// programName is the first element of the argument array passed to @main.
func programName(filename string) string {
	if filename == "" {
		return "-c"
	}
	return filename
}

func getImpOptions(filename string, args []string, stdout io.Writer) []imp.Option {
	opts := []imp.Option{
		imp.WithArgs(args),
		imp.WithStdout(stdout),
		imp.WithMaxDepth(viper.GetInt("max-depth")),
		imp.WithCallIsolation(viper.GetBool("isolate")),
	}
	if filename != "" {
		opts = append(opts, imp.WithFilename(filename))
	}
	if viper.GetBool("no-default-globals") {
		opts = append(opts, imp.WithoutDefaultGlobals())
	}
	if viper.GetBool("no-capabilities") {
		opts = append(opts, imp.WithoutCapabilities())
	}
	if viper.GetBool("read-only") {
		opts = append(opts, imp.WithFilesystem(afero.NewReadOnlyFs(afero.NewOsFs())))
	}
	return opts
}

func printTokens(w io.Writer, code, filename string) error {
	tokens, err := lexer.Tokenize(code, filename)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-8s %-10s %s\n", tok.StartPosition, tok.Type, tok.Literal)
	}
	return nil
}
