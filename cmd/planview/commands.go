package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/planview/internal/artifact"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show workflow phase completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := ctx.ensureModel()
			if err != nil {
				return err
			}
			phases := model.Phases()
			if ctx.wantJSON(cmd) {
				return writeJSON(cmd, map[string]any{"phases": phases})
			}

			rows := make([][]string, 0, len(phases))
			for _, p := range phases {
				rows = append(rows, []string{p.Label, mark(p.Complete)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Phase", "Complete"}, rows))
			return nil
		},
	}
}

func newProductCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "product",
		Short: "Print the product snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := ctx.ensureModel()
			if err != nil {
				return err
			}
			return writeJSON(cmd, model.ProductData())
		},
	}
}

func newSectionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List roadmap sections and their artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := ctx.ensureModel()
			if err != nil {
				return err
			}

			sections := model.Sections()
			if ctx.wantJSON(cmd) {
				return writeJSON(cmd, map[string]any{"sections": sections})
			}

			rows := make([][]string, 0, len(sections))
			for _, sec := range sections {
				order := ""
				if sec.InRoadmap {
					order = strconv.Itoa(sec.Order)
				}
				rows = append(rows, []string{
					order, sec.SectionID, sec.Title,
					mark(sec.HasSpec), mark(sec.HasData),
					strconv.Itoa(sec.ScreenDesignCount), strconv.Itoa(sec.ScreenshotCount),
					mark(sec.Complete),
				})
			}
			headers := []string{"#", "ID", "Title", "Spec", "Data", "Screens", "Shots", "Complete"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}

func newSectionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "section <id>",
		Short: "Print one section's artifacts as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !artifact.ValidSegment(id) {
				return fmt.Errorf("invalid section id %q", id)
			}
			model, err := ctx.ensureModel()
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]any{
				"section":  model.SectionData(id),
				"useShell": model.SectionUsesShell(id),
			})
		},
	}
}
