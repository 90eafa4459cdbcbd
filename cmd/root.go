package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "awflute",
	Short: "Animal Well flute autoplayer",
	Long:  `Parses numbered (jianpu) notation and maps it onto the in-game flute.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
