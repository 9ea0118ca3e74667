package main

import (
	"context"
	"fmt"
	"net/http"

	"breachwatch/internal/config"
	"breachwatch/internal/password"
	"breachwatch/pkg/intel/hibp"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/ratelimit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pwcheckCommand constructs the 'pwcheck' subcommand that reports how often a
// password appears in known breach corpuses, using the k-anonymity range
// endpoint. The password never leaves the machine; only a hash prefix does.
func pwcheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwcheck",
		Short: "Checks a password against known breach corpuses",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pw, _ := cmd.Flags().GetString("password")

			client := hibp.New(&http.Client{Timeout: cfg.Intel.RequestTimeout}, hibp.Options{
				UserAgent:     cfg.Intel.UserAgent,
				RangeEndpoint: cfg.Intel.RangeEndpoint,
			})

			count, err := password.New(client, ratelimit.New(cfg.Intel.MinInterval)).
				ExposureCount(ctx, pw)
			if err != nil {
				logger.Fatal(ctx, "could not check password", zap.Error(err))
			}

			fmt.Println(count) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "", "Password to check")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
