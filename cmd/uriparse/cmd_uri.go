package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/uriparse/format"
	"github.com/dhamidi/uriparse/uri"
)

var log = commonlog.GetLogger("uriparse")

func newURICmd() *cobra.Command {
	var outputFormat string
	var partial bool

	cmd := &cobra.Command{
		Use:   "uri <string>",
		Short: "Parse a URI and dump its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}

			var u *uri.URI
			if partial {
				rest, parsed, err := uri.Parse(input)
				if err != nil {
					return fmt.Errorf("parse uri: %w", err)
				}
				if rest != "" {
					log.Noticef("unconsumed input: %q", rest)
				}
				u = parsed
			} else {
				parsed, err := uri.ParseAll(input)
				if err != nil {
					return fmt.Errorf("parse uri: %w", err)
				}
				u = parsed
			}
			log.Debugf("parsed %q", input)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(u); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json or text)")
	cmd.Flags().BoolVar(&partial, "partial", false, "allow trailing input after the URI")
	return cmd
}
