package commands

import (
	"errors"
	"fmt"

	"github.com/davidjspooner/ecsig/internal/sigfile"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/davidjspooner/ecsig/pkg/logevent"
	"github.com/spf13/cobra"
)

func (a *app) decodeCmd() *cobra.Command {
	var text, format string
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a signature from a file or from --text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sigfile.ParseFormat(format)
			if err != nil {
				return err
			}

			var sig *ecsig.Signature
			switch {
			case len(args) == 1 && text != "":
				return errors.New("give a file or --text, not both")
			case len(args) == 1:
				if f != sigfile.FormatUnknown {
					return errors.New("--format only applies to --text")
				}
				sig, f, err = sigfile.Load(args[0])
			case text != "":
				sig, f, err = sigfile.Parse([]byte(text), f)
			default:
				return errors.New("nothing to decode")
			}
			if err != nil {
				return err
			}
			logevent.LoggerFromContext(cmd.Context()).Debug("decoded", "format", f, logevent.EventAttrKey, "decoded")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "r=%s\ns=%s\n", sig.R(), sig.S())
			return err
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "signature as hex, base64 or PEM text")
	cmd.Flags().StringVar(&format, "format", "auto", "format of --text: auto, hex, base64 or pem")
	return cmd
}
