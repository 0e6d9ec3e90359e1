package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/termoflexpro/termoflex-store/internal/schema"
	"github.com/termoflexpro/termoflex-store/internal/seed"
)

var (
	seedFile string
	migrate  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference dataset",
	Long: `Load the reference TermoFlexPro dataset in a single transaction.

Examples:
  termoflex seed                       # Embedded dataset
  termoflex seed --migrate             # Apply pending migrations first
  termoflex seed --file data.yaml      # Custom dataset with the same layout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}

		db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if migrate {
			if err := schema.Migrate(cmd.Context(), db, appLogger); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}

		report, err := seed.Load(cmd.Context(), db, ds, appLogger)
		if err != nil {
			return err
		}

		tables := make([]string, 0, len(report))
		for table := range report {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %d\n", table, report[table])
		}
		return nil
	},
}

func loadDataset() (*seed.Dataset, error) {
	if seedFile == "" {
		return seed.Default()
	}
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", seedFile, err)
	}
	return seed.Parse(data)
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML dataset to load instead of the embedded one")
	seedCmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before seeding")
}
