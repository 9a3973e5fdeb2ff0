package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "mapdoc",
	Short: "Informatica mapping document converter",
	Long: `
  __  __    _    ____  ____   ___   ____
 |  \/  |  / \  |  _ \|  _ \ / _ \ / ___|
 | |\/| | / _ \ | |_) | | | | | | | |
 | |  | |/ ___ \|  __/| |_| | |_| | |___
 |_|  |_/_/   \_\_|   |____/ \___/ \____|

MAPDOC - Informatica XML to tables, lineage, DDL and report
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mapdoc.yaml)")
	RootCmd.PersistentFlags().String("dialect", "", "target DDL dialect (oracle, sqlserver, postgres, mysql, snowflake)")
	RootCmd.PersistentFlags().String("brand-name", "", "brand name for the report header")
	RootCmd.PersistentFlags().String("brand-tagline", "", "brand tagline for the report header")
	RootCmd.PersistentFlags().String("brand-color", "", "brand accent color (3- or 6-digit hex)")

	viper.BindPFlag("output.dialect", RootCmd.PersistentFlags().Lookup("dialect"))
	viper.BindPFlag("brand.name", RootCmd.PersistentFlags().Lookup("brand-name"))
	viper.BindPFlag("brand.tagline", RootCmd.PersistentFlags().Lookup("brand-tagline"))
	viper.BindPFlag("brand.color", RootCmd.PersistentFlags().Lookup("brand-color"))

	viper.SetDefault("output.dialect", "oracle")
	viper.SetDefault("output.rows", 10)
	viper.SetDefault("brand.name", "VAAMG Consulting")
	viper.SetDefault("brand.tagline", "Agile in Mind. Enterprise in Delivery.")
	viper.SetDefault("brand.color", "#8a1e02")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("mapdoc")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
