package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rzbill/stamp/pkg/id"
)

// NewParseCommand constructs the `parse` command. Parsing is local; no
// server is contacted.
func NewParseCommand() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse <id>",
		Short: "Decode an id into machine id, sequence, and timestamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			p, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			fmt.Printf("id:        %s\n", args[0])
			fmt.Printf("packed:    %d\n", int64(p.ID))
			fmt.Printf("machineId: %d\n", p.MachineID)
			fmt.Printf("sequence:  %d\n", p.Sequence)
			fmt.Printf("utc:       %s\n", p.UTC.Format("2006-01-02T15:04:05.000Z07:00"))
			fmt.Printf("local:     %s\n", p.Local.Format("2006-01-02T15:04:05.000Z07:00"))
			return nil
		},
	}
	parseCmd.Flags().Bool("json", false, "Emit the parsed id as JSON")
	return parseCmd
}
