package main

import (
	goerrors "errors"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudcmds/imp/evaluator"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imp [file] [-- args...]",
		Short: "Run imp programs",
		Long: `Run an imp program by calling its @main function.

With no file, --code or --stdin, main.imp in the working directory is run.
Arguments after "--" are passed to @main as an array of strings, after the
program name (the file path, or "-c" for --code).`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              runHandler,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.imp.yaml)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	viper.BindPFlag("config", pf.Lookup("config"))
	viper.BindPFlag("no-color", pf.Lookup("no-color"))
	viper.BindPFlag("log-level", pf.Lookup("log-level"))

	f := cmd.Flags()
	addInputFlags(cmd)
	f.BoolP("display-tokens", "d", false, "Print the tokens before running")
	f.StringP("output", "o", "", "Output format for the value @main returns: text, json")
	f.Int("max-depth", evaluator.DefaultMaxDepth, "Maximum number of nested function calls")
	f.Bool("isolate", false, "Give each function call its own scope")
	f.Bool("read-only", false, "Reject writes made through the fs capability")
	f.Bool("no-default-globals", false, "Start programs with an empty root scope")
	f.Bool("no-capabilities", false, "Disable every capability")
	f.Duration("timeout", 0, "Stop the program after this long (0 means no limit)")
	for _, name := range []string{"max-depth", "isolate", "read-only", "no-default-globals", "no-capabilities", "timeout"} {
		viper.BindPFlag(name, f.Lookup(name))
	}

	cmd.AddCommand(newTokensCmd(), newASTCmd(), newDocCmd(), newVersionCmd())
	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "Code to run")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
}

// initConfig loads the config file and environment. Settings resolve in
// the order flag, IMP_* environment variable, config file, default.
func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".imp")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("imp")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !goerrors.As(err, &notFound) {
			return err
		}
	}
	processGlobalFlags()
	return nil
}
