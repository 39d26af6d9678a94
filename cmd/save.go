package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fspick/fspick/internal/dialog"
)

// saveCmd picks a location and name for a file to be written
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Pick a name and location for saving a file",
	Long: `Opens the dialog in save mode. A file name is typed (or seeded by
selecting an existing file to overwrite) and validated against the
current directory; confirming prints the full target path. The file
itself is not created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(dialog.SaveFile)
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
