package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
)

var (
	customerName  string
	customerPhone string
	branchID      string
	messageType   string
	promoCode     string
	specialNote   string
)

var processCmd = &cobra.Command{
	Use:   "process [message]",
	Short: "Bill an order message",
	Long: `Process a free-form order message into a priced invoice PDF.

The message is passed as arguments, or read from stdin when omitted.
Voice messages are supplied as their transcript with --type voice.

Examples:
  order-billing process --customer "Acme Retail" --phone +919999999999 \
    "Hi, please dispatch 10 thermal paper roll, 3 shipping box"

  echo "2 shipping box and 1 packing tape" | \
    order-billing process --customer "Acme Retail" --phone +919999999999 --promo BULK5

  order-billing process --type voice --customer "Acme Retail" \
    --phone +919999999999 "five barcode label pack"`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&customerName, "customer", "", "Customer name (required)")
	processCmd.Flags().StringVar(&customerPhone, "phone", "", "Customer phone (required)")
	processCmd.Flags().StringVar(&branchID, "branch", "main", "Branch identifier")
	processCmd.Flags().StringVar(&messageType, "type", "text", "Message type (text, voice)")
	processCmd.Flags().StringVar(&promoCode, "promo", "", "Promo code for a percentage discount")
	processCmd.Flags().StringVar(&specialNote, "note", "", "Free-text note attached to each item")
	_ = processCmd.MarkFlagRequired("customer")
	_ = processCmd.MarkFlagRequired("phone")
}

func runProcess(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	if message == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		message = strings.TrimSpace(string(data))
	}

	logger := newLogger()
	pipeline, closeStore, err := buildPipeline(logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	msg := &model.OrderMessage{
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		BranchID:      branchID,
		MessageType:   model.ChannelType(messageType),
		PromoCode:     promoCode,
		SpecialNote:   specialNote,
	}
	if msg.MessageType == model.ChannelVoice {
		msg.AudioTranscript = message
	} else {
		msg.Message = message
	}

	printVerbose("Processing message (%d bytes)\n", len(message))

	result, err := pipeline.Process(msg)
	if err != nil {
		var oe *model.OrderError
		if errors.As(err, &oe) {
			return fmt.Errorf("order rejected (%s): %s", oe.Kind, oe.Message)
		}
		return err
	}

	switch outputFormat {
	case "table":
		printInvoiceTable(result)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	return nil
}

func printInvoiceTable(result *model.InvoiceResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Invoice\t%s\n", result.InvoiceNumber)
	fmt.Fprintf(w, "Branch\t%s\n", result.BranchID)
	fmt.Fprintf(w, "Buyer\t%s\n", result.CustomerName)
	fmt.Fprintln(w, "\t")
	fmt.Fprintln(w, "Item\tQty\tUnit Price\tGST%\tLine Total")
	for _, line := range result.Lines {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			line.Item, line.Qty, line.UnitPrice.StringFixed(2),
			money.RatePercent(line.TaxRate), line.LineTotal.StringFixed(2))
	}
	fmt.Fprintln(w, "\t")
	fmt.Fprintf(w, "Subtotal\t%s\n", result.Totals.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "GST Total\t%s\n", result.Totals.TaxTotal.StringFixed(2))
	fmt.Fprintf(w, "Discount\t%s\n", result.Totals.Discount.StringFixed(2))
	fmt.Fprintf(w, "Total Due\t%s\n", result.Totals.GrandTotal.StringFixed(2))
	fmt.Fprintf(w, "PDF\t%s\n", result.PDFPath)
	fmt.Fprintf(w, "Payment\t%s\n", result.PaymentLink)
	_ = w.Flush()
}
