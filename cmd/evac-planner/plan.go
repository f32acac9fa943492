package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/planner"
	"github.com/spf13/cobra"
)

var (
	planMapPath   string
	planStart     int
	planHeuristic string
	planRiskPath  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a single evacuation path against a map file",
	Long: `plan loads a map JSON file directly (bypassing the HTTP API and the
Risk Map Builder) and runs the Risk-Aware A* search from --start to the
nearest safe zone, printing the resulting cell-id path as a JSON array.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planMapPath, "map", "", "path to a map JSON file (required)")
	planCmd.Flags().IntVar(&planStart, "start", 0, "starting cell id")
	planCmd.Flags().StringVar(&planHeuristic, "heuristic", "euclidean", "heuristic: manhattan|euclidean|octile")
	planCmd.Flags().StringVar(&planRiskPath, "risk", "", "optional path to a JSON []int per-cell risk vector")
	_ = planCmd.MarkFlagRequired("map")
}

func runPlan(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(planMapPath)
	if err != nil {
		return fmt.Errorf("plan: reading map file %s: %w", planMapPath, err)
	}

	var spec gridmodel.Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("plan: parsing map file %s: %w", planMapPath, err)
	}

	anchor := gridmodel.Anchor{}
	if cfgFile != "" {
		if constants, cErr := config.LoadConstants(cfgFile); cErr == nil {
			if ref, ok := constants.Reference[spec.SceneName]; ok {
				h := ref.H * spec.MillimeterPerPixel / 10
				v := ref.V * spec.MillimeterPerPixel / 10
				anchor = gridmodel.ComputeAnchor(ref.CellID, spec.Columns, h, v, spec.CellSizeCm)
			}
		}
	}

	grid, err := gridmodel.NewGrid(spec, anchor)
	if err != nil {
		return fmt.Errorf("plan: building grid: %w", err)
	}

	opts := []planner.Option{planner.WithHeuristicName(planHeuristic)}
	if planRiskPath != "" {
		riskData, err := os.ReadFile(planRiskPath)
		if err != nil {
			return fmt.Errorf("plan: reading risk vector %s: %w", planRiskPath, err)
		}
		var risk []int
		if err := json.Unmarshal(riskData, &risk); err != nil {
			return fmt.Errorf("plan: parsing risk vector %s: %w", planRiskPath, err)
		}
		opts = append(opts, planner.WithRisk(risk))
	}

	path, err := planner.Plan(grid, planStart, opts...)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	out, err := json.Marshal(path)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
