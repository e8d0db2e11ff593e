package commands

import (
	"fmt"

	"github.com/davidjspooner/ecsig/internal/batch"
	"github.com/spf13/cobra"
)

func (a *app) batchCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Decode many signature files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel <= 0 {
				parallel = a.config.BatchParallelism
			}
			results, err := batch.Decode(cmd.Context(), args, parallel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, result := range results {
				if result.Err != nil {
					fmt.Fprintf(out, "%s\terror\t%s\n", result.Path, result.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", result.Path, result.Format, result.Signature)
			}
			failures := batch.Failures(results)
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d files could not be decoded", len(failures), len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 0, "files decoded at once (default from config)")
	return cmd
}
