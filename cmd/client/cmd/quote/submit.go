// cmd/client/cmd/quote/submit.go
package quote

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hardstore/internal/app/client"
)

var (
	submitName      string
	submitPhone     string
	submitProduct   string
	submitProductID int64
	submitQuantity  string
	submitLocation  string
	submitSend      bool
)

var SubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a quote request",
	Long: `Submits a quote request to the business. Fields not given as flags are
prompted for interactively. With --send the quote message is also handed
to WhatsApp so the conversation starts immediately.

The request is recorded by the backend even if WhatsApp cannot be opened;
submission and handoff are independent steps.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		form := client.QuoteForm{
			Name:     submitName,
			Phone:    submitPhone,
			Product:  submitProduct,
			Quantity: submitQuantity,
			Location: submitLocation,
		}
		if submitProductID > 0 {
			form.ProductID = &submitProductID
		}
		if err := fillForm(&form); err != nil {
			return err
		}

		fmt.Println("Submitting quote request...")
		result, opened, err := app.SubmitQuote(cmd.Context(), form, submitSend)
		if err != nil {
			var vErr *client.ValidationError
			if errors.As(err, &vErr) {
				return fmt.Errorf("please fill in the %s field", vErr.Field)
			}
			return fmt.Errorf("failed to submit the quote: %w", err)
		}

		fmt.Println()
		fmt.Printf("Quote request #%d submitted. The business will contact you shortly.\n", result.Quote.ID)
		if !result.RemoteTemplate {
			// Local message fallback; the backend template was unavailable.
			fmt.Println("A standard message was prepared for WhatsApp.")
		}
		if submitSend {
			if opened {
				fmt.Println("WhatsApp opened with your message.")
			} else {
				fmt.Println("Could not open WhatsApp. You can send this message yourself:")
				fmt.Printf("\n  %s\n", result.Message)
			}
		}
		return nil
	},
}

// fillForm prompts for any field the flags left empty.
func fillForm(form *client.QuoteForm) error {
	reader := bufio.NewReader(os.Stdin)
	prompts := []struct {
		label string
		value *string
	}{
		{"Your name", &form.Name},
		{"Phone number", &form.Phone},
		{"Product", &form.Product},
		{"Quantity", &form.Quantity},
		{"Delivery location", &form.Location},
	}

	for _, p := range prompts {
		if *p.value != "" {
			continue
		}
		fmt.Printf("%s: ", p.label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		*p.value = strings.TrimSpace(line)
	}
	return nil
}

func init() {
	SubmitCmd.Flags().StringVarP(&submitName, "name", "n", "", "your name")
	SubmitCmd.Flags().StringVarP(&submitPhone, "phone", "p", "", "your phone number")
	SubmitCmd.Flags().StringVar(&submitProduct, "product", "", "product you want quoted")
	SubmitCmd.Flags().Int64Var(&submitProductID, "product-id", 0, "catalog id of the product")
	SubmitCmd.Flags().StringVarP(&submitQuantity, "quantity", "q", "", "quantity needed")
	SubmitCmd.Flags().StringVarP(&submitLocation, "location", "l", "", "delivery location")
	SubmitCmd.Flags().BoolVar(&submitSend, "send", false, "open WhatsApp with the quote message")
}
