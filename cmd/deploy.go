package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapdoc/internal/engine"
	"mapdoc/internal/pipeline"
)

var deployDSN string

var deployCmd = &cobra.Command{
	Use:   "deploy <mapping.xml>",
	Short: "Create the target table in a live database",
	Long:  "Synthesizes the DDL for the mapping's target table and executes it against the configured database, then verifies the table answers queries.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		res := pipeline.Run(data, pipeline.Options{
			Dialect: viper.GetString("output.dialect"),
			Brand:   getBrand(),
		})
		if len(res.Tables.TargetFields) == 0 {
			return fmt.Errorf("no target definition in %s; nothing to deploy", args[0])
		}

		driver := res.Dialect.DriverName()
		if driver == "" {
			return fmt.Errorf("dialect %s has no bundled driver; use convert and run the DDL yourself", res.Dialect.Name())
		}

		cfg, err := getDBConfig()
		if err != nil {
			return err
		}
		if cfg.Driver != "" {
			driver = cfg.Driver
		}

		db, err := sql.Open(driver, cfg.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		fmt.Printf("Connected via %s\n", driver)

		log.Printf("Deploying %s...", res.Meta.TargetName)
		n, err := engine.ExecScript(db, res.DDL)
		if err != nil {
			return fmt.Errorf("deploy failed after %d statements: %w", n, err)
		}

		status := "OK (Verified)"
		if err := engine.VerifyTable(db, res.Meta.TargetName); err != nil {
			status = fmt.Sprintf("UNVERIFIED (%v)", err)
		}
		fmt.Printf("[✓] %s : %d statements - %s\n", res.Meta.TargetName, n, status)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deployCmd)
	deployCmd.Flags().StringVar(&deployDSN, "dsn", "", "Database Source Name (DSN)")
	viper.BindPFlag("database.dsn", deployCmd.Flags().Lookup("dsn"))
}
