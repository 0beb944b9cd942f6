package main

import (
	"fmt"

	"github.com/go-comb/comb"
	"github.com/go-comb/comb/examples/funcall"
	"github.com/spf13/cobra"
)

func newCallCmd(cfg *Config) *cobra.Command {
	var maxArgs int
	cmd := &cobra.Command{
		Use:   "call [expression]",
		Short: "Parse a nested function call literal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-args") {
				cfg.Call.MaxArgs = maxArgs
			}
			if len(args) == 0 {
				return repl(func(input string) bool { return runCall(cfg, input) })
			}
			if !runCall(cfg, args[0]) {
				return fmt.Errorf("`%s` is not a call literal", args[0])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxArgs, "max-args", 0, "bound argument lists (0 means unbounded)")
	return cmd
}

func runCall(cfg *Config, input string) bool {
	grammar := funcall.Grammar()
	if cfg.Call.MaxArgs > 0 {
		grammar = funcall.Bounded(cfg.Call.MaxArgs)
	}
	parsed, _, err := comb.Translate(input, grammar)
	if err != nil {
		reportError(cfg, input, err)
		return false
	}
	log.Debugf("parsed %s", parsed)
	out, err := render(cfg, parsed)
	if err != nil {
		reportError(cfg, input, err)
		return false
	}
	fmt.Println(out)
	return true
}
