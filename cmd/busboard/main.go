package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arabus.dev/busboard"
	"arabus.dev/busboard/config"
	"arabus.dev/busboard/storage"
)

var rootCmd = &cobra.Command{
	Use:               "busboard",
	Short:             "Intercity bus departure board",
	Long:              "Browses routes and departures of intercity buses, and keeps track of favorite stops",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfg *config.Config

	dataSource string
	storeDSN   string
	namespace  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataSource, "data", "", "", "Dataset path or URL (default $BUSBOARD_DATA)")
	rootCmd.PersistentFlags().StringVarP(&storeDSN, "store", "", "", "Favorites storage (default $BUSBOARD_STORE)")
	rootCmd.PersistentFlags().StringVarP(&namespace, "namespace", "", "", "Favorites namespace (default $BUSBOARD_NAMESPACE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Flags take precedence over the environment.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	if dataSource == "" {
		dataSource = cfg.DataSource
	}
	if storeDSN == "" {
		storeDSN = cfg.Store
	}
	if namespace == "" {
		namespace = cfg.Namespace
	}

	return nil
}

func newLoader() *busboard.Loader {
	l := busboard.NewLoader()
	l.Timeout = cfg.FetchTimeout
	l.MaxSize = cfg.MaxDatasetSize
	return l
}

func LoadSchedule(ctx context.Context) (*busboard.Schedule, error) {
	return newLoader().Load(ctx, dataSource)
}

// Opens the favorites store and builds a board on top of schedule.
// The returned function closes the store.
func OpenBoard(schedule *busboard.Schedule) (*busboard.Board, func(), error) {
	store, err := storage.Open(storeDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("opening favorites storage: %w", err)
	}

	board := busboard.NewBoard(schedule, store, namespace)

	return board, func() { store.Close() }, nil
}
