// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// nfeProc mirrors the distribution envelope of an authorized NF-e document.
type nfeProc struct {
	XMLName xml.Name `xml:"nfeProc"`
	NFe     nfe      `xml:"NFe"`
}

type nfe struct {
	InfNFe infNFe `xml:"infNFe"`
}

type infNFe struct {
	Ide   ide       `xml:"ide"`
	Emit  emit      `xml:"emit"`
	Det   []det     `xml:"det"`
	Total nfeTotals `xml:"total"`
}

type ide struct {
	NNF   string `xml:"nNF"`
	DhEmi string `xml:"dhEmi"`
	DEmi  string `xml:"dEmi"`
}

type emit struct {
	CNPJ  string `xml:"CNPJ"`
	XNome string `xml:"xNome"`
}

type det struct {
	NItem string  `xml:"nItem,attr"`
	Prod  nfeProd `xml:"prod"`
}

type nfeProd struct {
	XProd  string `xml:"xProd"`
	QCom   string `xml:"qCom"`
	VUnCom string `xml:"vUnCom"`
	VProd  string `xml:"vProd"`
}

type nfeTotals struct {
	ICMSTot icmsTot `xml:"ICMSTot"`
}

type icmsTot struct {
	VNF    string `xml:"vNF"`
	VFrete string `xml:"vFrete"`
}

// NFeXMLParser decodes native NF-e XML (the nfeProc distribution envelope or
// a bare NFe document) into an InvoiceDocument.
type NFeXMLParser struct{}

// NewNFeXMLParser creates a new NF-e XML parser instance.
func NewNFeXMLParser() *NFeXMLParser {
	return &NFeXMLParser{}
}

// Parse decodes raw NF-e XML. It returns ErrInvoiceNotParsable when the
// payload is not recognizable NF-e XML so callers can fall back to AI
// extraction.
func (p *NFeXMLParser) Parse(raw []byte) (*entity.InvoiceDocument, error) {
	var inf infNFe

	var proc nfeProc
	if err := xml.Unmarshal(raw, &proc); err == nil && len(proc.NFe.InfNFe.Det) > 0 {
		inf = proc.NFe.InfNFe
	} else {
		// Some emitters hand over the bare NFe element without the
		// authorization envelope.
		var doc nfe
		decoder := xml.NewDecoder(bytes.NewReader(raw))
		if err := decoder.Decode(&doc); err != nil || len(doc.InfNFe.Det) == 0 {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeInvoiceNotParsable,
				"input is not recognizable NF-e XML",
				domainerror.ErrInvoiceNotParsable,
			)
		}
		inf = doc.InfNFe
	}

	emissionDate, err := parseEmissionDate(inf.Ide)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvoiceNotParsable,
			"invalid emission date in NF-e XML",
			err,
		)
	}

	totalValue, err := parseNFeDecimal(inf.Total.ICMSTot.VNF)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvoiceNotParsable,
			"invalid invoice total in NF-e XML",
			err,
		)
	}

	// vFrete is optional; absent means no freight was charged.
	freightValue := decimal.Zero
	if strings.TrimSpace(inf.Total.ICMSTot.VFrete) != "" {
		freightValue, err = parseNFeDecimal(inf.Total.ICMSTot.VFrete)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeInvoiceNotParsable,
				"invalid freight total in NF-e XML",
				err,
			)
		}
	}

	products := make([]entity.InvoiceProduct, 0, len(inf.Det))
	for _, d := range inf.Det {
		quantity, err := parseNFeQuantity(d.Prod.QCom)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeInvoiceNotParsable,
				"invalid item quantity in NF-e XML",
				err,
			)
		}

		unitValue, err := parseNFeDecimal(d.Prod.VUnCom)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeInvoiceNotParsable,
				"invalid item unit value in NF-e XML",
				err,
			)
		}

		lineTotal, err := parseNFeDecimal(d.Prod.VProd)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeInvoiceNotParsable,
				"invalid item total in NF-e XML",
				err,
			)
		}

		products = append(products, entity.InvoiceProduct{
			Description: strings.TrimSpace(d.Prod.XProd),
			Quantity:    quantity,
			UnitValue:   unitValue,
			TotalValue:  lineTotal,
		})
	}

	return &entity.InvoiceDocument{
		SupplierTaxID: entity.NormalizeTaxID(inf.Emit.CNPJ),
		SupplierName:  strings.TrimSpace(inf.Emit.XNome),
		InvoiceNumber: strings.TrimSpace(inf.Ide.NNF),
		EmissionDate:  emissionDate,
		TotalValue:    totalValue,
		FreightValue:  freightValue,
		Products:      products,
	}, nil
}

// parseEmissionDate handles both the layout 4 dhEmi timestamp and the legacy
// dEmi date-only field.
func parseEmissionDate(id ide) (time.Time, error) {
	if id.DhEmi != "" {
		return time.Parse(time.RFC3339, id.DhEmi)
	}
	return time.Parse("2006-01-02", id.DEmi)
}

func parseNFeDecimal(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

// parseNFeQuantity reads qCom, which the fiscal schema renders with up to four
// decimal places even for unit goods ("3.0000"). Fractional quantities are
// truncated toward zero; line totals stay authoritative regardless.
func parseNFeQuantity(value string) (int, error) {
	qty, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return int(qty.IntPart()), nil
}
