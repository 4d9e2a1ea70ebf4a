package invoicelayout

import "time"

// InvoiceSnapshot is the immutable input for one render call. The engine
// trusts its contents as-is: amounts are not re-derived and no validation
// is performed, that contract belongs to the producer.
type InvoiceSnapshot struct {
	Number   string           `json:"number"`
	Currency string           `json:"currency"` // ISO 4217 code
	Business BusinessSnapshot `json:"business"`
	Client   *ClientSnapshot  `json:"client,omitempty"`

	Items []LineItemSnapshot `json:"items"` // order is significant and preserved

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	IssuedAt *time.Time `json:"issuedAt,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`

	Notes   string           `json:"notes,omitempty"`
	Payment *PaymentSnapshot `json:"payment,omitempty"`
	Footer  string           `json:"footer,omitempty"`
}

// BusinessSnapshot identifies the issuing business in the document header.
type BusinessSnapshot struct {
	Name     string   `json:"name"`
	Details  []string `json:"details,omitempty"`  // address, VAT id, contact lines
	LogoPath string   `json:"logoPath,omitempty"` // resolved by the renderer
}

// ClientSnapshot is the bill-to party.
type ClientSnapshot struct {
	Name    string   `json:"name"`
	Details []string `json:"details,omitempty"`
}

// LineItemSnapshot is a single invoice line. Amount is trusted input; the
// engine never recomputes Quantity * UnitPrice. Historical records may
// populate only Description, leaving Title empty.
type LineItemSnapshot struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// PaymentSnapshot carries payment instructions and optional machine-readable
// payment data rendered as a barcode in the payment block.
type PaymentSnapshot struct {
	Instructions string `json:"instructions,omitempty"`
	QRData       string `json:"qrData,omitempty"`
	Format       string `json:"format,omitempty"` // BarcodeQR (default) or BarcodePDF417
}

// Supported PaymentSnapshot.Format values.
const (
	BarcodeQR     = "qr"
	BarcodePDF417 = "pdf417"
)
