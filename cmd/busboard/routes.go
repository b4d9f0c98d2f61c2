package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"arabus.dev/busboard"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lists routes matching the given criteria, with upcoming departures",
	Args:  cobra.NoArgs,
	RunE:  routes,
}

var criteria busboard.Criteria

func init() {
	addCriteriaFlags(routesCmd.Flags(), &criteria)
	rootCmd.AddCommand(routesCmd)
}

func addCriteriaFlags(flags *pflag.FlagSet, c *busboard.Criteria) {
	flags.StringVarP(&c.Operator, "operator", "o", "", "Restrict to an operator")
	flags.StringVarP(&c.Origin, "from", "f", "", "Restrict to routes leaving from a stop ID")
	flags.StringVarP(&c.Destination, "to", "t", "", "Restrict to routes arriving at a stop ID")
	flags.StringVarP(&c.Query, "query", "q", "", "Search route names and codes")
	flags.StringVarP(&c.RouteID, "route", "r", "", "Show a single route, ignoring other criteria")
}

func routes(cmd *cobra.Command, args []string) error {
	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	board, closeBoard, err := OpenBoard(schedule)
	if err != nil {
		return err
	}
	defer closeBoard()

	board.SetCriteria(criteria)
	renderRoutes(cmd.OutOrStdout(), board.View(time.Now()).Routes)

	return nil
}
