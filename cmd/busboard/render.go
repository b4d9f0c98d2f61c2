package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"arabus.dev/busboard"
	"arabus.dev/busboard/model"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	favStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

func renderHeader(w io.Writer, now time.Time, day model.DayType) {
	fmt.Fprintf(w, "%s  %s (%s)\n\n",
		titleStyle.Render("Horarios de buses"),
		now.Format("15:04"),
		day.Label(),
	)
}

func renderDepartures(w io.Writer, deps []model.Departure, indent string) {
	if len(deps) == 0 {
		fmt.Fprintf(w, "%s%s\n", indent, dimStyle.Render("sin salidas"))
		return
	}

	for _, d := range deps {
		style := timeStyle
		if !d.Upcoming() {
			style = pastStyle
		}
		fmt.Fprintf(w, "%s• [%s] %s\n", indent, style.Render(d.Time), d.Relative())
	}
}

func stopName(sd busboard.StopDepartures) string {
	if sd.Stop == nil {
		return sd.StopID
	}
	return sd.Stop.Name
}

func renderRoutes(w io.Writer, cards []busboard.RouteCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No se encontraron rutas"))
		return
	}

	for _, card := range cards {
		fmt.Fprintf(w, "%s  %s\n",
			routeStyle.Render(card.Route.DisplayName()),
			dimStyle.Render(card.Route.Operator),
		)
		for _, sd := range card.Stops {
			marker := "☆"
			if sd.Favorite {
				marker = favStyle.Render("★")
			}
			fmt.Fprintf(w, "  %s %s\n", marker, stopName(sd))
			renderDepartures(w, sd.Departures, "      ")
		}
		fmt.Fprintln(w)
	}
}

func renderFavorites(w io.Writer, cards []busboard.FavoriteCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, dimStyle.Render("Sin favoritos"))
		return
	}

	for _, card := range cards {
		fmt.Fprintf(w, "%s %s\n  %s\n",
			favStyle.Render("★"),
			routeStyle.Render(card.Route.DisplayName()),
			card.Stop.Name,
		)
		renderDepartures(w, card.Departures, "    ")
	}
	fmt.Fprintln(w)
}

func renderBoard(w io.Writer, view busboard.View) {
	renderHeader(w, view.Now, view.DayType)

	if len(view.Favorites) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Favoritos"))
		renderFavorites(w, view.Favorites)
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Rutas (%d)", len(view.Routes))))
	renderRoutes(w, view.Routes)
}

func renderStops(w io.Writer, stops []*model.Stop) {
	for _, stop := range stops {
		fmt.Fprintf(w, "%s: %s\n", stop.ID, stop.Name)
	}
}

func renderOperators(w io.Writer, operators []string) {
	for _, op := range operators {
		fmt.Fprintln(w, op)
	}
}
