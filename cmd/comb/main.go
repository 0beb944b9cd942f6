package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-comb/comb"
	"github.com/go-comb/comb/ascii"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("comb")

func main() {
	var (
		verbosity  int
		configPath string
		format     string
	)

	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "comb",
		Short: "Run the example grammars against your own inputs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				*cfg = *loaded
				log.Infof("loaded configuration from %s", configPath)
			}
			if format != "" {
				cfg.Format = format
			}
			return cfg.Validate()
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "add a log verbosity level (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format (tree, json, yaml)")

	rootCmd.AddCommand(newIPCmd(cfg))
	rootCmd.AddCommand(newCallCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// render encodes a parse result in the configured output format.
func render(cfg *Config, value any) (string, error) {
	switch cfg.Format {
	case "tree":
		return comb.RenderTreeWith(value, treeFormat(cfg)), nil
	case "json":
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unknown format: %s", cfg.Format)
	}
}

// treeFormat colors tree tokens according to the default theme, or
// leaves them alone when color is off.
func treeFormat(cfg *Config) comb.FormatFn {
	if !cfg.Color {
		return func(text string, _ comb.FormatToken) string { return text }
	}
	return func(text string, token comb.FormatToken) string {
		switch token {
		case comb.FormatToken_Literal:
			return ascii.DefaultTheme.Literal + text + ascii.Reset
		case comb.FormatToken_Branch:
			return ascii.DefaultTheme.Branch + text + ascii.Reset
		default:
			return text
		}
	}
}

// reportError prints a parse failure to stderr, with its line and
// column when the offending offset is known.
func reportError(cfg *Config, input string, err error) {
	prefix := "error:"
	if cfg.Color {
		prefix = ascii.Color(ascii.DefaultTheme.Error, "error:")
	}
	var perr *comb.ParseError
	if errors.As(err, &perr) {
		loc := comb.LocationAt(input, perr.Offset)
		message := perr.Message
		if perr.Rule != "" {
			message = perr.Rule + ": " + message
		}
		fmt.Fprintf(os.Stderr, "%s %s at %s\n", prefix, message, loc)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, err)
}

// repl reads one input per line and parses each, the way a grammar
// author pokes at a rule.
func repl(parse func(input string) bool) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		text = strings.TrimSuffix(text, "\n")
		if text == "" {
			continue
		}
		parse(text)
	}
}
