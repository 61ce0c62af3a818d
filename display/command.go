package display

import (
	"github.com/spf13/cobra"

	"github.com/teranos/paw/logger"
)

// ShouldOutputJSON determines if a command should output JSON based on flags
// and on whether logs were switched to JSON.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return logger.JSONOutput
	}

	// Explicit --json on the command wins either way
	if cmd.Flags().Lookup("json") != nil && cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	return logger.JSONOutput
}
