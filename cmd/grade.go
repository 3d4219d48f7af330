package main

import (
	"strings"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/logger"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const unitInstructions = "Select a conversion unit (Kelvin, Celsius, Fahrenheit, Rankine for temperature; " +
	"liters, tablespoons, cubic-inches, cups, cubic-feet, gallons for volume). " +
	"Please note that the unit is case-sensitive."

// gradeCommand is the root command: it grades one response.
func gradeCommand(a *app) *cobra.Command {
	var q domain.Question

	cmd := &cobra.Command{
		Use:   a.info.Name,
		Short: "Grade a student's response to a unit conversion question",
		Long: "Unit Conversion Grader Tool to grade a student's response to the unit conversion question.\n\n" +
			"Student's response must match the correct answer after both values are rounded to the tenths place.",
		Version: a.info.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			if err := requireFlags(cmd, "input-value", "from-unit", "to-unit", "student-response"); err != nil {
				return err
			}

			ctx := cmd.Context()
			p := a.printer(cmd)
			if a.verbose {
				p.VerboseEnabled()
			}

			outcome := a.buildGrader().Grade(ctx, q)
			logger.Debug(ctx, "graded response", zap.String("outcome", string(outcome)))

			p.Result(outcome)
			p.Feedback(a.feedbackURL())

			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}}: {{.Version}}\n")

	cmd.Flags().StringVarP(&q.InputValue, "input-value", "i", "", "Input numerical value.")
	cmd.Flags().StringVarP(&q.FromUnit, "from-unit", "f", "", "Input conversion unit: "+unitInstructions)
	cmd.Flags().StringVarP(&q.ToUnit, "to-unit", "t", "", "Target conversion unit: "+unitInstructions)
	cmd.Flags().StringVarP(&q.StudentResponse, "student-response", "s", "", "Student's response.")
	cmd.Flags().BoolP("version", "V", false, "Show the version and exit.")

	return cmd
}

// requireFlags fails naming every listed flag that was not set.
func requireFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	return nil
}
