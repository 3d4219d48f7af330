package main

import (
	"unitgrader/internal/sheet"
	"unitgrader/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func batchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <sheet.yml>",
		Short: "Grade every question of an answer sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(cmd.Context(), zap.String("sheet", args[0]))

			s, err := sheet.Load(args[0])
			if err != nil {
				return err
			}

			results, summary := sheet.Grade(ctx, a.buildGrader(), s.Questions)
			logger.Info(ctx, "graded answer sheet",
				zap.Int("total", summary.Total),
				zap.Int("correct", summary.Correct),
				zap.Int("incorrect", summary.Incorrect),
				zap.Int("invalid", summary.Invalid),
			)

			a.printer(cmd).Batch(results, summary)

			return nil
		},
	}
}
