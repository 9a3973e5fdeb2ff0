package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapdoc/internal/bundle"
	"mapdoc/internal/pipeline"
)

var outDir string

var convertCmd = &cobra.Command{
	Use:   "convert <mapping.xml>",
	Short: "Convert a mapping export into tables, DDL and a summary report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		dialectName := viper.GetString("output.dialect")
		log.Printf("Using dialect: %s\n", dialectName)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(3).AppendCompleted()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Converting: "
		})

		res := pipeline.Run(data, pipeline.Options{
			Dialect: dialectName,
			Brand:   getBrand(),
		})
		bar.Incr()

		base := bundle.BaseName(args[0])
		zipBytes, err := bundle.Build(base, res.Tables.Sheets(), res.DDL, res.Summary)
		bar.Incr()
		if err != nil {
			uiprogress.Stop()
			return err
		}

		outPath := filepath.Join(outDir, base+".zip")
		if err := os.WriteFile(outPath, zipBytes, 0o644); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		bar.Incr()
		uiprogress.Stop()

		// Surface the multi-target simplification instead of hiding it:
		// only the first target drives DDL and lineage.
		targets := map[string]bool{}
		for _, f := range res.Tables.TargetFields {
			targets[f.TargetName] = true
		}
		if len(targets) > 1 {
			fmt.Printf("! %d target definitions found; DDL and lineage cover only %q\n", len(targets), res.Meta.TargetName)
		}

		fmt.Printf("\n📦 Conversion Summary:\n")
		fmt.Printf("  Mapping:       %s\n", res.Meta.MappingName)
		fmt.Printf("  Target table:  %s\n", res.Meta.TargetName)
		fmt.Printf("  Source fields: %d\n", len(res.Tables.SourceFields))
		fmt.Printf("  Target fields: %d\n", len(res.Tables.TargetFields))
		fmt.Printf("  Connectors:    %d\n", len(res.Tables.Connectors))
		fmt.Printf("  Lineage rows:  %d\n", len(res.Tables.Lineage))
		fmt.Printf("  Bundle:        %s\n", outPath)
		log.Printf("Convert Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory for the bundle")
}
