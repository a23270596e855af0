package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/imp"
	"github.com/cloudcmds/imp/ast"
)

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree of imp code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  astHandler,
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func astHandler(cmd *cobra.Command, args []string) error {
	code, filename, err := getCode(cmd, args)
	if err != nil {
		return err
	}
	var opts []imp.Option
	if filename != "" {
		opts = append(opts, imp.WithFilename(filename))
	}
	program, err := imp.Parse(cmd.Context(), code, opts...)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	if format == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), program.AST().String())
		return nil
	}
	output, err := marshal(ast.Dump(program.AST()), format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
