package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"arabus.dev/busboard"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Shows the full board, refreshing it periodically",
	Args:  cobra.NoArgs,
	RunE:  watch,
}

var (
	interval      time.Duration
	watchCriteria busboard.Criteria
)

func init() {
	watchCmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Refresh interval (default $BUSBOARD_REFRESH_SECONDS or 30s)")
	addCriteriaFlags(watchCmd.Flags(), &watchCriteria)
	rootCmd.AddCommand(watchCmd)
}

func watch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interval <= 0 {
		interval = cfg.RefreshInterval
	}

	// The board stays usable without a dataset; favorites can still
	// be browsed once it comes back.
	schedule := newLoader().LoadOrEmpty(ctx, dataSource)

	board, closeBoard, err := OpenBoard(schedule)
	if err != nil {
		return err
	}
	defer closeBoard()

	board.SetCriteria(watchCriteria)

	err = board.Run(ctx, interval, func(view busboard.View) {
		// Clear screen
		fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")
		renderBoard(cmd.OutOrStdout(), view)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
