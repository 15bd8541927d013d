package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/solver/profit"
)

var (
	configFile string
	quiet      bool
	showPlan   bool
	showTable  bool
	jsonOut    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estate [budget]",
		Short: "Max Profit Property Development",
		Long: `A dynamic programming solver that allocates a time budget between
Theatres, Pubs and Commercial Parks for maximum earnings.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runSolver,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVarP(&showPlan, "plan", "p", false, "Show the construction plan")
	rootCmd.Flags().BoolVarP(&showTable, "table", "t", false, "Show results for every budget from 1 to budget")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolver(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	cfg, err := models.ResolveConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}

	budget := cfg.Solver.DefaultBudget
	if len(args) == 1 {
		budget, err = parseBudget(args[0])
		if err != nil {
			color.Red("Invalid budget: %v", err)
			os.Exit(1)
		}
	}

	solver := profit.NewSolverWithConfig(cfg.Solver)

	if showTable {
		results, err := solver.SolveRange(min(1, budget), budget)
		if err != nil {
			color.Red("Error: %v", err)
			os.Exit(1)
		}
		if jsonOut {
			exitOnError(printJSON(os.Stdout, results))
			return
		}
		exitOnError(printBudgetTable(os.Stdout, results))
		return
	}

	allocation, err := solver.Solve(budget)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	if jsonOut {
		exitOnError(printJSON(os.Stdout, allocation))
		return
	}

	if !quiet {
		titleColor.Println("\n╭──────────────────────────────────╮")
		titleColor.Println("│  Max Profit Property Development │")
		titleColor.Println("╰──────────────────────────────────╯")
		fmt.Println()
		infoColor.Printf("⏱️  Total available time units: %d\n\n", budget)
	}

	printResult(os.Stdout, allocation)

	if showPlan {
		fmt.Println()
		exitOnError(printPlan(os.Stdout, allocation))
	}
}

func exitOnError(err error) {
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// parseBudget accepts whole, non-negative numbers only
func parseBudget(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}

func printResult(w io.Writer, a *models.Allocation) {
	successColor := color.New(color.FgGreen, color.Bold)

	successColor.Fprintf(w, "💰 Maximum Earnings: %s\n", models.FormatEarnings(a.Earnings))
	fmt.Fprintf(w, "   🎭 Theatres:          %d\n", a.Counts.Theatre)
	fmt.Fprintf(w, "   🍺 Pubs:              %d\n", a.Counts.Pub)
	fmt.Fprintf(w, "   🏢 Commercial Parks:  %d\n", a.Counts.CommercialPark)
}

func printPlan(w io.Writer, a *models.Allocation) error {
	fmt.Fprintln(w, "🏗️  Construction plan:")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Building", "Start", "End", "Duration", "Earnings"}),
	)
	for i, action := range a.BuildingActions {
		row := []string{
			fmt.Sprintf("%d", i+1),
			action.BuildingType.DisplayName(),
			fmt.Sprintf("%d", action.StartTime),
			fmt.Sprintf("%d", action.EndTime),
			fmt.Sprintf("%d", action.Duration()),
			models.FormatEarnings(action.Earnings),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nIdle time: %d of %d\n", a.IdleTime(), a.Budget)
	return nil
}

func printBudgetTable(w io.Writer, results []*models.Allocation) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Budget", "Earnings", "Theatres", "Pubs", "Commercial Parks"}),
	)
	for _, a := range results {
		row := []string{
			fmt.Sprintf("%d", a.Budget),
			models.FormatEarnings(a.Earnings),
			fmt.Sprintf("%d", a.Counts.Theatre),
			fmt.Sprintf("%d", a.Counts.Pub),
			fmt.Sprintf("%d", a.Counts.CommercialPark),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// jsonAllocation is the machine readable form of an allocation
type jsonAllocation struct {
	Budget         int                  `json:"budget"`
	Earnings       int                  `json:"earnings"`
	Theatre        int                  `json:"theatre"`
	Pub            int                  `json:"pub"`
	CommercialPark int                  `json:"commercialPark"`
	Plan           []jsonBuildingAction `json:"plan,omitempty"`
}

type jsonBuildingAction struct {
	Building string `json:"building"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Earnings int    `json:"earnings"`
}

func toJSON(a *models.Allocation) jsonAllocation {
	out := jsonAllocation{
		Budget:         a.Budget,
		Earnings:       a.Earnings,
		Theatre:        a.Counts.Theatre,
		Pub:            a.Counts.Pub,
		CommercialPark: a.Counts.CommercialPark,
	}
	for _, action := range a.BuildingActions {
		out.Plan = append(out.Plan, jsonBuildingAction{
			Building: string(action.BuildingType),
			Start:    action.StartTime,
			End:      action.EndTime,
			Earnings: action.Earnings,
		})
	}
	return out
}

// printJSON writes one allocation or a slice of allocations
func printJSON(w io.Writer, v any) error {
	var out any
	switch x := v.(type) {
	case *models.Allocation:
		out = toJSON(x)
	case []*models.Allocation:
		list := make([]jsonAllocation, 0, len(x))
		for _, a := range x {
			list = append(list, toJSON(a))
		}
		out = list
	default:
		return fmt.Errorf("unsupported value %T", v)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
