package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dto "task-tracker.com/task-tracker/internal/data_models"
	"task-tracker.com/task-tracker/internal/export"
)

var (
	exportOut    string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write tasks to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tasks, err := a.taskService.ListTasks(cmd.Context(), exportSearch)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()

		if err := export.WriteTasks(f, dto.NewTaskResponses(tasks)); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}

		cmd.Printf("%d tasks written to %s\n", len(tasks), exportOut)
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "tasks.xlsx", "output file")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "only export tasks whose entity or contact contains this text")
	rootCmd.AddCommand(exportCmd)
}
