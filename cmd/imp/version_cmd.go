package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if strings.ToLower(format) == "text" {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			output, err := marshal(map[string]any{
				"version": version,
				"commit":  commit,
				"date":    date,
			}, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml")
	return cmd
}
