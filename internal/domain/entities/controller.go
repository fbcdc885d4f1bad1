package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind carries the cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI-facing entry point. Execute returns an error so the
// process exit code reflects fatal failures.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
