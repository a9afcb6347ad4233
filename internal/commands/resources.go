package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sooth/internal/catalog"
	"sooth/internal/config"
	"sooth/internal/models"
)

var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"res"},
	Short:   "List wellness resources",
	Long:    "List the resource library with optional search and category filters",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()

		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		featured, _ := cmd.Flags().GetBool("featured")

		var resources []models.Resource
		if featured {
			resources = cat.FeaturedResources()
		} else {
			resources = cat.FilterResources(search, category)
		}

		if len(resources) == 0 {
			fmt.Println("No resources found.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-40s %-8s %-12s %-7s %s\n", "ID", "TITLE", "TYPE", "CATEGORY", "RATING", "DURATION")
		fmt.Println(strings.Repeat("-", 80))

		// Print each resource
		for _, r := range resources {
			title := r.Title
			if r.Featured {
				title = "★ " + title
			}
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			fmt.Printf("%-4s %-40s %-8s %-12s %-7.1f %s\n",
				r.ID,
				title,
				r.Type,
				r.Category,
				r.Rating,
				r.Duration)
		}
	},
}

// loadCatalog loads the catalog from the configured path, exiting on failure
func loadCatalog() *catalog.Catalog {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	path, err := cfg.CatalogFile()
	if err != nil {
		fmt.Printf("Error resolving catalog path: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	return cat
}

func init() {
	resourcesCmd.Flags().StringP("search", "s", "", "Search titles and descriptions")
	resourcesCmd.Flags().StringP("category", "c", "all", "Filter by category (anxiety/depression/stress/wellness/general)")
	resourcesCmd.Flags().BoolP("featured", "f", false, "Show only featured resources")
}
