package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgersmith/every-penny-counts/internal/categorize"
	"github.com/ledgersmith/every-penny-counts/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category table in precedence order",
		Long: `Show every category the classifier knows, in match order. Earlier
categories win when a description matches more than one, so the order shown
here is the order that decides ties.`,
		RunE: runCategories,
	}

	cmd.Flags().BoolP("verbose", "v", false, "show the match patterns for each category")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	fmt.Println(cli.TitleStyle.Render("Categories (precedence order)"))

	for i, category := range categorize.CategoryPatterns {
		var flags []string
		if categorize.EssentialCategories[category.Name] {
			flags = append(flags, "essential")
		}
		if categorize.FixedCategories[category.Name] {
			flags = append(flags, "fixed")
		}

		line := fmt.Sprintf("%2d. %s", i+1, category.Name)
		if len(flags) > 0 {
			line += cli.SubtleStyle.Render(" [" + strings.Join(flags, ", ") + "]")
		}
		fmt.Println(line)

		if verbose {
			fmt.Println(cli.SubtleStyle.Render("    " + strings.Join(category.Patterns, ", ")))
		}
	}

	fmt.Printf("\n%s\n", cli.SubtleStyle.Render("Unmatched descriptions fall back to \"Other\"."))
	return nil
}
