package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/imp/internal/lexer"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Display the tokens of imp code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tokensHandler,
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

type tokenInfo struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func tokensHandler(cmd *cobra.Command, args []string) error {
	code, filename, err := getCode(cmd, args)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	if format == "text" {
		return printTokens(cmd.OutOrStdout(), code, filename)
	}
	tokens, err := lexer.Tokenize(code, filename)
	if err != nil {
		return err
	}
	infos := make([]tokenInfo, 0, len(tokens))
	for _, tok := range tokens {
		infos = append(infos, tokenInfo{
			Type:    string(tok.Type),
			Literal: tok.Literal,
			Line:    tok.StartPosition.LineNumber(),
			Column:  tok.StartPosition.ColumnNumber(),
		})
	}
	output, err := marshal(infos, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
