package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"okura/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of okura",
	// 設定ファイルは不要
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", config.AppName, config.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
