// Command invoicepdf renders an invoice snapshot JSON file to a PDF.
//
// # Usage
//
//	invoicepdf -in invoice.json -out invoice.pdf [-letterhead stationery.pdf]
//
// The input file is an InvoiceSnapshot in JSON form, for example:
//
//	{
//	  "number": "INV-2031",
//	  "currency": "EUR",
//	  "business": {"name": "Acme GmbH", "details": ["Musterstr. 1", "Berlin"]},
//	  "client": {"name": "Widget Corp"},
//	  "items": [
//	    {"title": "Consulting", "quantity": 8, "unitPrice": 120, "amount": 960}
//	  ],
//	  "subtotal": 960, "tax": 182.4, "total": 1142.4
//	}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	invoicelayout "github.com/lvillar/invoicelayout"
	"github.com/lvillar/invoicelayout/compose"
	"github.com/lvillar/invoicelayout/metrics"
	"github.com/lvillar/invoicelayout/render"
)

func main() {
	var (
		in         = flag.String("in", "", "invoice snapshot JSON file (required)")
		out        = flag.String("out", "invoice.pdf", "output PDF file")
		letterhead = flag.String("letterhead", "", "optional stationery PDF underlaid behind page 1")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*in, *out, *letterhead); err != nil {
		fmt.Fprintf(os.Stderr, "invoicepdf: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, letterhead string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var snap invoicelayout.InvoiceSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing %s: %w", in, err)
	}

	m, err := metrics.NewOpenType()
	if err != nil {
		return err
	}
	pages := compose.New(m).Compose(&snap)

	var opts []render.Option
	if letterhead != "" {
		opts = append(opts, render.WithLetterhead(letterhead))
	}
	return render.New(opts...).RenderFile(out, pages)
}
