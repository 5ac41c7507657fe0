package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"emailrep/internal/api/handler/v1handler"
	"emailrep/internal/config"
	"emailrep/internal/reputation"
	"emailrep/pkg/storage"

	"github.com/spf13/cobra"
)

// checkCommand constructs the 'check' subcommand that evaluates addresses
// in-process and prints one JSON response per address.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <email>...",
		Short: "Evaluates email addresses and prints their verdicts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			persist, _ := cmd.Flags().GetBool("persist")

			var strg storage.Storage
			if persist {
				pg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg = pg
			}

			evaluator := reputation.New(strg, nil, getProbes(ctx, cfg), nil, reputation.NewOptions(cfg))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			failed := 0
			for _, address := range args {
				env := evaluate(ctx, evaluator, address)
				if env.Status != http.StatusOK {
					failed++
				}
				if err := enc.Encode(env); err != nil {
					return fmt.Errorf("could not write verdict: %w", err)
				}
			}
			if failed > 0 {
				cmd.SilenceUsage = true

				return fmt.Errorf("%d of %d addresses could not be evaluated", failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().Bool("persist", false, "Store verdicts in the database and report address history")
	cmd.SetErr(os.Stderr)

	return cmd
}

func evaluate(ctx context.Context, evaluator reputation.Evaluator, address string) v1handler.Envelope {
	start := time.Now()
	v, err := evaluator.Evaluate(ctx, address)
	took := math.Round(time.Since(start).Seconds()*100) / 100 //nolint: mnd
	if err != nil {
		res := v1handler.New(v1handler.Deps{}).NewError(ctx, err)

		return v1handler.Envelope{
			Status:       res.StatusCode,
			ResponseTime: took,
			Error:        res.Response.Message,
			Code:         res.Response.Code,
		}
	}

	return v1handler.Envelope{Status: http.StatusOK, ResponseTime: took, Data: v}
}
