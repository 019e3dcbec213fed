package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/uriparse/jsonvalue"
)

func newJSONCmd() *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "json <string>",
		Short: "Parse a JSON value and re-encode it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}

			rest, v, err := jsonvalue.Parse(input)
			if err != nil {
				return fmt.Errorf("parse json: %w", err)
			}
			if trimmed := strings.TrimSpace(rest); trimmed != "" {
				if !partial {
					return fmt.Errorf("trailing input after value: %q", trimmed)
				}
				log.Noticef("unconsumed input: %q", trimmed)
			}

			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&partial, "partial", false, "allow trailing input after the value")
	return cmd
}
