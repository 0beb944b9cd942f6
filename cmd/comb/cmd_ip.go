package main

import (
	"fmt"

	"github.com/go-comb/comb"
	"github.com/go-comb/comb/examples/ipaddr"
	"github.com/spf13/cobra"
)

func newIPCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ip [address]",
		Short: "Parse a dotted quad IPv4 address",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return repl(func(input string) bool { return runIP(cfg, input) })
			}
			if !runIP(cfg, args[0]) {
				return fmt.Errorf("`%s` is not an IPv4 address", args[0])
			}
			return nil
		},
	}
}

func runIP(cfg *Config, input string) bool {
	quad, _, err := comb.Translate(input, ipaddr.Grammar())
	if err != nil {
		reportError(cfg, input, err)
		return false
	}
	addr, err := ipaddr.FromQuad(quad)
	if err != nil {
		reportError(cfg, input, err)
		return false
	}
	log.Debugf("%s is a valid address", addr)
	out, err := render(cfg, quad)
	if err != nil {
		reportError(cfg, input, err)
		return false
	}
	fmt.Println(out)
	return true
}
