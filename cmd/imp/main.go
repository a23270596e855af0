package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err, !viper.GetBool("no-color")))
		os.Exit(1)
	}
}
