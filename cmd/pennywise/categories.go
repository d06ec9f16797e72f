package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pennywise-fin/pennywise/internal/classify"
	"github.com/pennywise-fin/pennywise/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category keyword tables in match order",
		Long: `Print the spending categories and their keyword lists.

Categories are listed in the order the classifier tests them: on ambiguous
text, the first listed category with a matching keyword wins.`,
		RunE: runCategories,
	}
}

func runCategories(_ *cobra.Command, _ []string) error {
	var b strings.Builder

	for i, rule := range classify.CategoryRules() {
		fmt.Fprintf(&b, "%2d. %-16s %s\n", i+1, rule.Category,
			cli.SubtleStyle.Render(strings.Join(rule.Keywords, ", ")))
	}
	fmt.Fprintf(&b, "%2d. %-16s %s\n", len(classify.CategoryRules())+1, "MISCELLANEOUS",
		cli.SubtleStyle.Render("(catch-all, no keywords)"))

	fmt.Println(cli.RenderBox("Category match order", strings.TrimRight(b.String(), "\n")))
	fmt.Println(cli.RenderBox("Internal-transfer phrases",
		cli.SubtleStyle.Render(strings.Join(classify.TransferPhrases(), ", "))))
	fmt.Println(cli.RenderBox("Recurrence keywords",
		cli.SubtleStyle.Render(strings.Join(classify.RecurringKeywords(), ", "))))
	return nil
}
