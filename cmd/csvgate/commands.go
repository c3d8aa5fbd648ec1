package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/csvgate/config"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/logger"
	"github.com/Gunvolt24/csvgate/pkg/preflight"
	"github.com/Gunvolt24/csvgate/pkg/uploadclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errRejected — файл не прошёл проверку; итог уже напечатан.
var errRejected = errors.New("preflight rejected")

type cliOptions struct {
	verbose bool
	log     ports.Logger
	sync    func() error
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "csvgate",
		Short:         "Preflight and upload CSV exports of apartment transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !opts.verbose {
				opts.log, opts.sync = logger.Wrap(zap.NewNop()), func() error { return nil }
				return nil
			}
			zl, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			opts.log, opts.sync = zl, cleanup
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.sync != nil {
				_ = opts.sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable structured logging to stderr")

	root.AddCommand(newCheckCmd(), newUploadCmd(cfg, opts))
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.csv>",
		Short: "Check row and header column counts without uploading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := preflight.CheckFile(cmd.Context(), preflight.NewValidator(), args[0], cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !outcome.IsAccepted() {
				return errRejected
			}
			return nil
		},
	}
}

func newUploadCmd(cfg *config.Config, opts *cliOptions) *cobra.Command {
	var (
		serverURL string
		areaRange string
		maxSizeMB int
		timeout   = cfg.Upload.Timeout
		tick      = cfg.Upload.TickInterval
	)

	cmd := &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Check the file and submit it to the analysis server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			client := uploadclient.New(serverURL,
				uploadclient.WithMaxSize(int64(maxSizeMB)<<20),
				uploadclient.WithTickInterval(tick),
				uploadclient.WithProgress(cmd.ErrOrStderr()),
				uploadclient.WithLogger(opts.log),
			)

			res, err := client.Upload(ctx, args[0], areaRange)
			var rejected *uploadclient.RejectedError
			if errors.As(err, &rejected) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], rejected.Outcome)
				return errRejected
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s: status %d in %ds\n",
				args[0], res.StatusCode, int(res.Elapsed.Seconds()))
			if res.Location != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "results: %s\n", res.Location)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", cfg.Upload.ServerURL, "analysis server base URL")
	cmd.Flags().StringVar(&areaRange, "area-range", cfg.Upload.AreaRange, "area filter: all|le60|gt60le85|gt85le102|gt102le135|gt135")
	cmd.Flags().IntVar(&maxSizeMB, "max-size-mb", cfg.Upload.MaxSizeMB, "max file size in MiB (0 disables the check)")
	cmd.Flags().DurationVar(&timeout, "timeout", timeout, "overall upload timeout (0 disables)")
	cmd.Flags().DurationVar(&tick, "tick", tick, "elapsed-time report interval")
	return cmd
}
