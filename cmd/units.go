package main

import (
	"unitgrader/internal/units"

	"github.com/spf13/cobra"
)

func unitsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported unit categories and their units",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.printer(cmd).Units(units.Default())
		},
	}
}
