package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var rootFlag string
	var configFlag string
	var jsonFlag bool

	ctx := newCommandContext(&rootFlag, &configFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:           "planview",
		Short:         "Inspect a product plan directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Project root containing product/ and src/")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output JSON")

	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newProductCommand(ctx))
	rootCmd.AddCommand(newSectionsCommand(ctx))
	rootCmd.AddCommand(newSectionCommand(ctx))

	return rootCmd
}
