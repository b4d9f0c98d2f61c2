package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arabus.dev/busboard"
)

var departuresCmd = &cobra.Command{
	Use:   "departures <route_id> <stop_id>",
	Short: "Lists the next departures of a route from a stop",
	Args:  cobra.ExactArgs(2),
	RunE:  departures,
}

var count int

func init() {
	departuresCmd.Flags().IntVarP(&count, "count", "n", busboard.ResultDepartures, "Number of departures to list")
	rootCmd.AddCommand(departuresCmd)
}

func departures(cmd *cobra.Command, args []string) error {
	routeID, stopID := args[0], args[1]

	if count < 0 {
		return fmt.Errorf("count must be >= 0")
	}

	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	route, found := schedule.Route(routeID)
	if !found {
		return fmt.Errorf("unknown route '%s'", routeID)
	}
	stop, found := schedule.Stop(stopID)
	if !found {
		return fmt.Errorf("unknown stop '%s'", stopID)
	}

	now := time.Now()
	deps, err := schedule.Departures(routeID, stopID, now, count)
	if err != nil {
		return err
	}

	renderHeader(cmd.OutOrStdout(), now, busboard.DayTypeOf(now))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", routeStyle.Render(route.DisplayName()), stop.Name)
	renderDepartures(cmd.OutOrStdout(), deps, "    ")

	return nil
}
