package cmd

import (
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add sample tasks to the store",
	Long:  "Creates the built-in sample tasks, or those listed in a YAML file, when the store is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		created, err := a.seed(cmd.Context(), seedFile, seedForce)
		if err != nil {
			return err
		}

		cmd.Printf("%d tasks added\n", created)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML file with tasks to add instead of the built-in samples")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "add tasks even if the store already has some")
	rootCmd.AddCommand(seedCmd)
}
