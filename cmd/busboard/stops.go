package main

import (

	"github.com/spf13/cobra"
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Lists all stops",
	Args:  cobra.NoArgs,
	RunE:  stops,
}

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "Lists bus operators",
	Args:  cobra.NoArgs,
	RunE:  operators,
}

func init() {
	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(operatorsCmd)
}

func stops(cmd *cobra.Command, args []string) error {
	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	renderStops(cmd.OutOrStdout(), schedule.Stops())
	return nil
}

func operators(cmd *cobra.Command, args []string) error {
	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	renderOperators(cmd.OutOrStdout(), schedule.Operators())
	return nil
}
