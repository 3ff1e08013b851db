// Package categorize handles the ad-hoc categorization command.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"jmoret/bankparse/cmd/root"
	"jmoret/bankparse/internal/amountutils"
	"jmoret/bankparse/internal/models"
)

var (
	description string
	amount      string
	save        string
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Resolve the category for a description and signed amount, using the
custom merchant mappings and the built-in keyword table.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0", "Signed amount, negative for expenses")
	Cmd.Flags().StringVar(&save, "save", "", "Save the description as a custom mapping to this category")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	logger := c.Logger()

	if description == "" {
		logger.Fatal("A description is required, use -d")
	}
	amt, err := amountutils.Parse(amount)
	if err != nil {
		logger.WithError(err).Fatal("Invalid amount")
	}

	if save != "" {
		if !models.IsValidCategory(save) {
			logger.Fatal(fmt.Sprintf("Unknown category %q", save))
		}
		mappings, err := c.MappingStore().Load()
		if err != nil {
			logger.WithError(err).Fatal("Failed to load merchant mappings")
		}
		mappings[description] = save
		if err := c.MappingStore().Save(mappings); err != nil {
			logger.WithError(err).Fatal("Failed to save merchant mappings")
		}
		fmt.Printf("Saved mapping: %s -> %s\n", description, save)
		return
	}

	category := c.Categorizer().Categorize(description, amt)
	fmt.Printf("Category: %s\n", category)
}
