package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var verbosity int

func main() {
	rootCmd := &cobra.Command{
		Use:   "uriparse",
		Short: "Parse URIs and JSON values with combinator grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newURICmd())
	rootCmd.AddCommand(newJSONCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns arg, or stdin's contents when arg is "-".
func readInput(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
