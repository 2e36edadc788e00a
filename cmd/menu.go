package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hana-site/internal/content"
)

var menuCategory string

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")).MarginTop(1)
	itemStyle    = lipgloss.NewStyle().Bold(true)
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2)
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu",
	Long:  `Prints every menu category, or only the one named by --category (ramen, small-plates or drinks).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := content.Categories()
		if menuCategory != "" {
			cat, err := content.ParseCategory(menuCategory)
			if err != nil {
				return err
			}
			cats = []content.Category{cat}
		}
		renderMenu(cmd.OutOrStdout(), cats)
		return nil
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuCategory, "category", "", "only print this category")
	rootCmd.AddCommand(menuCmd)
}

// renderMenu writes each category as a heading followed by its items, with
// prices aligned on the widest name.
func renderMenu(w io.Writer, cats []content.Category) {
	for _, cat := range cats {
		items := content.Menu(cat)
		width := 0
		for _, item := range items {
			width = max(width, len(item.Name))
		}

		fmt.Fprintln(w, sectionStyle.Render(strings.ToUpper(cat.Label())))
		for _, item := range items {
			pad := strings.Repeat(" ", width-len(item.Name)+2)
			fmt.Fprintln(w, itemStyle.Render(item.Name)+pad+priceStyle.Render(item.Price))
			if item.HasDescription() {
				fmt.Fprintln(w, descStyle.Render(item.Description))
			}
		}
	}
}
