package commands

import (
	"github.com/davidjspooner/ecsig/internal/sigfile"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/spf13/cobra"
)

func (a *app) encodeCmd() *cobra.Command {
	var r, s, format, label string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an (r, s) pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rInt, err := parseInteger("r", r)
			if err != nil {
				return err
			}
			sInt, err := parseInteger("s", s)
			if err != nil {
				return err
			}
			f, err := sigfile.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == sigfile.FormatUnknown {
				f = sigfile.FormatPEM
			}
			if label == "" {
				label = a.config.PemLabel
			}
			out, err := sigfile.Render(ecsig.New(rInt, sInt), f, label)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&r, "r", "", "r component")
	cmd.Flags().StringVar(&s, "s", "", "s component")
	cmd.Flags().StringVar(&format, "format", "pem", "der, hex, base64 or pem")
	cmd.Flags().StringVar(&label, "label", "", "PEM label (default from config)")
	cmd.MarkFlagRequired("r")
	cmd.MarkFlagRequired("s")
	return cmd
}
