package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	shipStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48"))
	baseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	busyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	statusStyles = map[string]lipgloss.Style{
		"ACTIVE": lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
		"WON":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		"LOST":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
)

// Render lays the frame out as a single string ready for painting.
// Same frame, same output: the painter just clears and redraws.
func Render(f Frame) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top, renderStats(f.Stats), renderMap(f.Map))

	middle := []string{renderSalvage(f.Salvage)}
	if f.Station != nil {
		middle = append(middle, renderStation(*f.Station))
	}
	if f.Encounter != nil {
		middle = append(middle, renderEncounter(*f.Encounter))
	}

	parts := []string{
		titleStyle.Render(" STARLINE SALVAGE "),
		top,
		lipgloss.JoinHorizontal(lipgloss.Top, middle...),
		renderLog(f.Log),
		renderFooter(f),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderStats(s StatsPanel) string {
	if !s.HasGame {
		return panelStyle.Render("SHIP\n" + dimStyle.Render("No run in progress.\nPress n to launch."))
	}
	status := s.Status
	if style, ok := statusStyles[status]; ok {
		status = style.Render(status)
	}
	body := fmt.Sprintf(
		"SHIP\nTurn    %d\nCredits %d / %d\nFuel    %d\nHull    %d\nSector  (%d,%d)\nStatus  %s",
		s.Turn, s.Credits, s.GoalCredits, s.Fuel, s.Hull, s.X, s.Y, status,
	)
	return panelStyle.Render(body)
}

func renderMap(m MapPanel) string {
	if m.Size == 0 {
		return panelStyle.Render("SECTOR MAP\n" + dimStyle.Render("(no chart)"))
	}
	var b strings.Builder
	b.WriteString("SECTOR MAP")
	for y := 0; y < m.Size; y++ {
		b.WriteByte('\n')
		for x := 0; x < m.Size; x++ {
			switch m.Cells[y][x] {
			case cellShip:
				b.WriteString(shipStyle.Render(" YOU "))
			case cellBase:
				b.WriteString(baseStyle.Render(" BASE"))
			default:
				b.WriteString(dimStyle.Render("  .  "))
			}
		}
	}
	return panelStyle.Render(b.String())
}

func renderSalvage(p SalvagePanel) string {
	var b strings.Builder
	b.WriteString("SALVAGE")
	if p.Empty != "" {
		b.WriteByte('\n')
		b.WriteString(dimStyle.Render(p.Empty))
	}
	for _, row := range p.Rows {
		line := fmt.Sprintf("\n[%c] %-16s %3dcr  risk %d", row.Key, row.Name, row.Value, row.Risk)
		if !row.Enabled {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
	}
	return panelStyle.Render(b.String())
}

func renderStation(p StationPanel) string {
	var b strings.Builder
	b.WriteString("STATION  ")
	b.WriteString(p.Name)
	for _, row := range p.Rows {
		line := fmt.Sprintf("\n[%c] %-22s %3dcr", row.Key, row.Label, row.Price)
		if !row.Enabled {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
	}
	return panelStyle.Render(b.String())
}

func renderEncounter(p EncounterPanel) string {
	body := fmt.Sprintf(
		"%s\n%s  threat %d\n[f] fight  [b] bribe  [e] evade",
		alertStyle.Render("AMBUSH"),
		strings.ReplaceAll(p.Type, "_", " "),
		p.Threat,
	)
	return panelStyle.BorderForeground(lipgloss.Color("203")).Render(body)
}

func renderLog(entries []string) string {
	var b strings.Builder
	b.WriteString("LOG")
	if len(entries) == 0 {
		b.WriteByte('\n')
		b.WriteString(dimStyle.Render("(quiet)"))
	}
	for _, entry := range entries {
		b.WriteString("\n> ")
		b.WriteString(entry)
	}
	return panelStyle.Render(b.String())
}

func renderFooter(f Frame) string {
	if f.Alert != "" {
		return alertStyle.Render(" ! " + f.Alert)
	}
	if f.Busy {
		return busyStyle.Render(" … " + strings.Join(f.Help, "  "))
	}
	return dimStyle.Render(" " + strings.Join(f.Help, "  "))
}
