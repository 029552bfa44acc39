package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewNextCommand constructs the `next` command.
func NewNextCommand(baseURL BaseURLFunc) *cobra.Command {
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Issue new ids from a running stamp server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count < 1 {
				return fmt.Errorf("--count must be positive")
			}

			u := baseURL() + "/v1/id/next"
			if count > 1 {
				u += "?count=" + strconv.Itoa(count)
			}
			resp, err := http.Post(u, "application/json", nil)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			var body struct {
				ID    string   `json:"id"`
				IDs   []string `json:"ids"`
				Error string   `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return fmt.Errorf("bad response (%s): %w", resp.Status, err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server refused (%s): %s", resp.Status, body.Error)
			}
			if body.ID != "" {
				fmt.Println(body.ID)
			}
			for _, s := range body.IDs {
				fmt.Println(s)
			}
			return nil
		},
	}
	nextCmd.Flags().Int("count", 1, "Number of ids to issue")
	return nextCmd
}
