package cmd

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [files...]",
	Short: "Validate generated invoice PDFs",
	Long: `Validate that generated invoice documents are well-formed PDFs.

Examples:
  order-billing verify invoices/INV-2026-00001.pdf
  order-billing verify invoices/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	var failed int
	for _, path := range args {
		if err := api.ValidateFile(path, nil); err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("OK    %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
