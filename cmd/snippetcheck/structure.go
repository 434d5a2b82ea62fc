// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package main

import (
	"fmt"

	"github.com/joeycumines/go-snippetcheck/jinjascript"
	"github.com/spf13/cobra"
)

func newStructureCommand(root *rootOptions) *cobra.Command {
	var (
		block string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   `structure FILE`,
		Short: `Report delimiter and template tag counts of a page script`,
		Long: `Counts braces, parentheses, brackets and {% if %} / {% endif %} tags of
the scripts in a template block (or, with --raw, of a whole file), then
prints a preview. With --strict, an unbalanced count exits non-zero.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			var source string
			if raw {
				b, err := readInput(cmd, args[0])
				if err != nil {
					return err
				}
				source = string(b)
			} else if source, err = templateScript(cmd, args[0], block); err != nil {
				return err
			}

			report := jinjascript.CheckStructure(source)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), report.String()); err != nil {
				return err
			}

			logger.Debug().
				Str(`file`, args[0]).
				Bool(`balanced`, report.Balanced()).
				Log(`checked structure`)

			if root.strict && !report.Balanced() {
				return fmt.Errorf("%s: unbalanced structure", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&block, `block`, jinjascript.DefaultBlock, `template block containing the scripts`)
	cmd.Flags().BoolVar(&raw, `raw`, false, `treat FILE as plain script, rather than a template`)

	return cmd
}
