package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/davidjspooner/ecsig/internal/sigfile"
	"github.com/davidjspooner/ecsig/internal/verifier"
	"github.com/davidjspooner/ecsig/pkg/logevent"
	"github.com/spf13/cobra"
)

var errNotVerified = errors.New("signature does not verify")

func (a *app) verifyCmd() *cobra.Command {
	var pubkeyPath, messagePath, signaturePath string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a signature over a message with an EC public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logevent.LoggerFromContext(cmd.Context())

			pemText, err := os.ReadFile(pubkeyPath)
			if err != nil {
				return err
			}
			pub, info, err := verifier.LoadPublicKey(pemText)
			if err != nil {
				return fmt.Errorf("%s: %w", pubkeyPath, err)
			}
			logger.Debug("public key", "key", info.String())

			message, err := os.ReadFile(messagePath)
			if err != nil {
				return err
			}
			sig, _, err := sigfile.Load(signaturePath)
			if err != nil {
				return err
			}

			if !verifier.Verify(pub, message, sig) {
				logger.Info("verification failed", "signature", signaturePath, logevent.EventAttrKey, "verify_failed")
				return errNotVerified
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "verified: %s\n", info)
			return err
		},
	}
	cmd.Flags().StringVar(&pubkeyPath, "pubkey", "", "PEM public key file")
	cmd.Flags().StringVar(&messagePath, "message", "", "signed message file")
	cmd.Flags().StringVar(&signaturePath, "signature", "", "signature file in any supported format")
	cmd.MarkFlagRequired("pubkey")
	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("signature")
	return cmd
}
