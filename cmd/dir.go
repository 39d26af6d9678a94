package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fspick/fspick/internal/dialog"
)

// dirCmd picks an existing directory instead of a file
var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Pick an existing directory",
	Long: `Opens the dialog in directory-selection mode. Only an existing
directory is accepted; confirming prints its absolute path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(dialog.SelectDirectory)
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
