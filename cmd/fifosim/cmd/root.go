// Package cmd provides the command-line interface for fifosim.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fifosim",
	Short: "Fifosim verifies and traces synchronous queue controller models.",
	Long: `Fifosim verifies and traces synchronous queue controller models. ` +
		`The verify command drives a queue with randomized requests and checks ` +
		`it against a reference model every cycle. The trace command records ` +
		`the per-cycle boundary signals into a SQLite database.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env file in the working directory can predefine the FIFOSIM_*
		// environment variables consulted by the subcommands.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
