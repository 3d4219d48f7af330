package main

import (
	"unitgrader/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func convertCommand(a *app) *cobra.Command {
	var inputValue, fromUnit, toUnit string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print the expected answer of a conversion question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, "input-value", "from-unit", "to-unit"); err != nil {
				return err
			}

			p := a.printer(cmd)
			expected, err := a.buildGrader().Answer(cmd.Context(), inputValue, fromUnit, toUnit)
			if err != nil {
				logger.Debug(cmd.Context(), "invalid question", zap.Error(err))
				p.Invalid(err)

				return nil
			}
			p.Answer(inputValue, fromUnit, toUnit, expected)

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputValue, "input-value", "i", "", "Input numerical value.")
	cmd.Flags().StringVarP(&fromUnit, "from-unit", "f", "", "Input conversion unit: "+unitInstructions)
	cmd.Flags().StringVarP(&toUnit, "to-unit", "t", "", "Target conversion unit: "+unitInstructions)

	return cmd
}
