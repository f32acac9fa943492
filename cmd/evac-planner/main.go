// Command evac-planner serves and drives the seismic evacuation-routing
// system: the Risk Map Builder (internal/riskengine) and the Risk-Aware A*
// planner (internal/planner), wired together by internal/httpapi.
//
// Grounded on jhkimqd-chaos-utils/cmd/chaos-runner/main.go's root-command
// structuring: a package-level rootCmd with persistent flags, subcommands
// registered in init(), each subcommand's flags/RunE split into its own
// file.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "evac-planner",
	Short: "Seismic-hazard evacuation routing",
	Long: `evac-planner builds per-cell seismic risk maps from live sensor
readings and a component inventory, then searches a floorplan grid for a
risk-aware evacuation path from a worker's current cell to the nearest
safe zone.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (none is read when unset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
