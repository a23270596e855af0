package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/imp"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc [topic]",
		Aliases: []string{"d"},
		Short:   "Browse language documentation",
		Long: `Browse language documentation.

Topics are builtin names ("len"), capability names ("math") or
capability functions ("math.sqrt").`,
		Args: cobra.MaximumNArgs(1),
		RunE: docHandler,
	}
	cmd.Flags().String("category", "", "Show a category: builtins, capabilities, syntax, errors")
	cmd.Flags().Bool("all", false, "Show all documentation")
	cmd.Flags().StringP("output", "o", "json", "Output format: json, yaml")
	return cmd
}

func docHandler(cmd *cobra.Command, args []string) error {
	var opts []imp.DocsOption
	if all, _ := cmd.Flags().GetBool("all"); all {
		opts = append(opts, imp.DocsAll())
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		opts = append(opts, imp.DocsCategory(category))
	}
	if len(args) > 0 {
		opts = append(opts, imp.DocsTopic(args[0]))
	}
	docs := imp.Docs(opts...)

	// Round trip through JSON so YAML output uses the same field names.
	var data any
	if err := json.Unmarshal([]byte(docs.JSON()), &data); err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	output, err := marshal(data, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
