package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arabus.dev/busboard"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Lists favorite stops with their next departures",
	Args:  cobra.NoArgs,
	RunE:  favorites,
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <route_id> <stop_id>",
	Short: "Adds or removes a favorite",
	Args:  cobra.ExactArgs(2),
	RunE:  favorite,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(favoriteCmd)
}

func favorites(cmd *cobra.Command, args []string) error {
	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	board, closeBoard, err := OpenBoard(schedule)
	if err != nil {
		return err
	}
	defer closeBoard()

	renderFavorites(cmd.OutOrStdout(), board.View(time.Now()).Favorites)
	return nil
}

func favorite(cmd *cobra.Command, args []string) error {
	routeID, stopID := args[0], args[1]

	schedule, err := LoadSchedule(cmd.Context())
	if err != nil {
		return err
	}

	route, found := schedule.Route(routeID)
	if !found {
		return fmt.Errorf("unknown route '%s'", routeID)
	}
	if stopID != route.FromStopID && stopID != route.ToStopID {
		return fmt.Errorf("stop '%s' is not served by route '%s'", stopID, routeID)
	}

	board, closeBoard, err := OpenBoard(schedule)
	if err != nil {
		return err
	}
	defer closeBoard()

	if board.ToggleFavorite(busboard.FavoriteKey(routeID, stopID)) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s agregado a favoritos\n", favStyle.Render("★"), route.DisplayName())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s eliminado de favoritos\n", route.DisplayName())
	}

	return nil
}
