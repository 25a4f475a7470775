package main

import (
	"log"

	flood "github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18"
	"github.com/spf13/cobra"
)

func main() {
	var serial bool

	root := &cobra.Command{
		Use:   "floodsim",
		Short: "SCS-CN flood inundation depth simulator",
		Long:  "Estimates per-watershed flood inundation depths under rainfall/land-use scenarios by filling SCS curve-number runoff volumes into the terrain.",
	}

	sim := &cobra.Command{
		Use:   "sim <controlfile>",
		Short: "evaluate every scenario over the model domain",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flood.Sim(flood.LoadConfig(args[0]), !serial)
		},
	}
	sim.Flags().BoolVar(&serial, "serial", false, "evaluate watersheds one at a time with a progress bar")

	merge := &cobra.Command{
		Use:   "merge <controlfile>",
		Short: "mosaic per-watershed depth grids into one composite per scenario",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flood.MergeAll(flood.LoadConfig(args[0]))
		},
	}

	root.AddCommand(sim, merge)
	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}
