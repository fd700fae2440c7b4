package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	purgeFlag bool
	jsonFlag  bool
)

// uploadsCmd groups upload maintenance commands
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Maintain uploaded files",
}

// orphansCmd represents the uploads orphans command
var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Find stored objects without a metadata row",
	Long:  `Lists objects under the upload prefix that no file row points at, and rows whose object is gone. With --purge the orphaned objects are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		svc := a.uploads.Service()
		report, err := svc.FindOrphans(cmd.Context())
		if err != nil {
			return err
		}

		if jsonFlag {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		} else {
			fmt.Println("\n=== Upload Orphans ===")
			fmt.Printf("Orphaned objects: %d\n", len(report.Objects))
			for _, key := range report.Objects {
				fmt.Printf("- %s\n", key)
			}
			fmt.Printf("Rows without object: %d\n", len(report.Missing))
			for _, name := range report.Missing {
				fmt.Printf("- %s\n", name)
			}
		}

		if !purgeFlag {
			return nil
		}
		removed, err := svc.PurgeOrphans(cmd.Context(), report.Objects)
		fmt.Printf("Removed %d objects\n", removed)
		return err
	},
}

func init() {
	RootCmd.AddCommand(uploadsCmd)
	uploadsCmd.AddCommand(orphansCmd)
	orphansCmd.Flags().BoolVar(&purgeFlag, "purge", false, "Remove orphaned objects")
	orphansCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the report as JSON")
}
