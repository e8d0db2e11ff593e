// Package batch decodes many signature files concurrently.
package batch

import (
	"context"
	"log/slog"

	"github.com/davidjspooner/dsflow/pkg/job"
	"github.com/davidjspooner/ecsig/internal/genericutils"
	"github.com/davidjspooner/ecsig/internal/sigfile"
	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/davidjspooner/ecsig/pkg/logevent"
)

type Result struct {
	Path      string
	Format    sigfile.Format
	Signature *ecsig.Signature
	Err       error
}

// Decode loads every path with at most parallelism files in flight. Results
// keep the order of paths; a file that fails to decode is recorded in its
// Result and does not stop the others.
func Decode(ctx context.Context, paths []string, parallelism int) ([]Result, error) {
	logger := logevent.LoggerFromContext(ctx).WithGroup("batch")
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	parallelism = genericutils.Clamp(parallelism, 1, len(paths))

	indices := make([]int, len(paths))
	for i := range indices {
		indices[i] = i
	}

	executer := job.NewExecuter[int](slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	executer.Start(ctx, parallelism, func(ctx context.Context, i int) error {
		// each index is written by exactly one worker
		result := &results[i]
		result.Path = paths[i]
		result.Signature, result.Format, result.Err = sigfile.Load(paths[i])
		if result.Err != nil {
			logger.Warn("decode failed", "path", paths[i], "kind", asn1core.TypeOf(result.Err), "error", result.Err, logevent.EventAttrKey, "decode_failed")
			return nil
		}
		logger.Debug("decoded", "path", paths[i], "format", result.Format, logevent.EventAttrKey, "decoded")
		return nil
	}, indices)

	err := executer.WaitForCompletion()
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Failures collects the errors of the failed results.
func Failures(results []Result) asn1core.ErrorList {
	var errorList asn1core.ErrorList
	for _, result := range results {
		if result.Err != nil {
			errorList = append(errorList, result.Err)
		}
	}
	return errorList
}
