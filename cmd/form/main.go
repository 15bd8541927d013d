package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/solver/profit"
	"github.com/napolitain/solver-estate/internal/tui"
)

var configFile = flag.String("config", "", "Path to YAML config file")

func main() {
	flag.Parse()

	cfg, err := models.ResolveConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	form := tui.NewForm(profit.NewSolverWithConfig(cfg.Solver), cfg.Solver.DefaultBudget)
	if _, err := tea.NewProgram(form).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
