package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapdoc/internal/bundle"
	"mapdoc/internal/engine"
	"mapdoc/internal/mapping"
)

var (
	seedRows int
	seedOut  string
)

var seedCmd = &cobra.Command{
	Use:   "seed <mapping.xml>",
	Short: "Generate a sample-data INSERT script for the target table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		parsed := mapping.Parse(data)

		// Flag > config > default
		rows := viper.GetInt("output.rows")
		if seedRows > 0 {
			rows = seedRows
		}

		uiprogress.Start()
		bar := uiprogress.AddBar(rows).AppendCompleted()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Seeding: "
		})
		script := engine.BuildInsertScript(parsed.Meta, parsed.Tables.TargetFields, rows, func() {
			bar.Incr()
		})
		uiprogress.Stop()

		outPath := filepath.Join(seedOut, bundle.BaseName(args[0])+"_seed.sql")
		if err := os.WriteFile(outPath, []byte(script), 0o644); err != nil {
			return fmt.Errorf("failed to write seed script: %w", err)
		}

		fmt.Printf("Seed script for %s (%d rows): %s\n", parsed.Meta.TargetName, rows, outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedRows, "rows", 0, "Number of sample rows to generate (overrides config)")
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", ".", "Output directory for the script")
}
