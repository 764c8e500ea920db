package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// extractionSchema constrains the model output before it reaches the domain.
// Numbers travel as strings so decimal values survive without float drift.
const extractionSchema = `{
  "type": "object",
  "required": ["supplier_tax_id", "supplier_name", "invoice_number", "emission_date", "total_value", "freight_value", "products"],
  "properties": {
    "supplier_tax_id": { "type": "string", "pattern": "^[0-9]{14}$" },
    "supplier_name": { "type": "string", "minLength": 1 },
    "invoice_number": { "type": "string", "minLength": 1 },
    "emission_date": { "type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$" },
    "total_value": { "type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$" },
    "freight_value": { "type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$" },
    "products": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["description", "quantity", "unit_value", "total_value"],
        "properties": {
          "description": { "type": "string", "minLength": 1 },
          "quantity": { "type": "integer", "minimum": 1 },
          "unit_value": { "type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$" },
          "total_value": { "type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$" }
        }
      }
    }
  }
}`

// GeminiExtractionService extracts structured invoice data from inputs the
// native XML parser cannot handle (DANFE text, OCR dumps) using Google Gemini.
type GeminiExtractionService struct {
	apiKey    string
	modelName string
	schema    *jsonschema.Schema
}

// NewGeminiExtractionService creates a new Gemini extraction service instance.
func NewGeminiExtractionService(apiKey, modelName string) *GeminiExtractionService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiExtractionService{
		apiKey:    apiKey,
		modelName: modelName,
		schema:    jsonschema.MustCompileString("invoice_extraction.json", extractionSchema),
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiExtractionService) IsAvailable() bool {
	return s.apiKey != ""
}

// Extract produces a normalized InvoiceDocument from raw invoice content.
func (s *GeminiExtractionService) Extract(ctx context.Context, raw []byte) (*entity.InvoiceDocument, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionUnavailable,
			"gemini extraction service is not configured",
			domainerror.ErrExtractionUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(raw)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	doc, err := s.parseResponse(resp)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiExtractionService) buildPrompt(raw []byte) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um especialista em documentos fiscais brasileiros. Sua tarefa e extrair os dados estruturados de uma nota fiscal (NF-e, DANFE ou texto equivalente) fornecida abaixo.

REGRAS IMPORTANTES:
- O CNPJ do emitente deve conter APENAS digitos (14 caracteres, sem pontuacao)
- Valores monetarios devem ser strings decimais com ponto como separador (ex: "1234.56"), sem separador de milhar e sem simbolo de moeda
- A data de emissao deve estar no formato YYYY-MM-DD
- "freight_value" e o valor total do frete da nota; use "0" quando nao houver frete
- Para cada item, "total_value" e o valor total da linha COMO IMPRESSO na nota, nunca recalculado a partir de quantidade x valor unitario
- Quantidades fracionarias devem ser arredondadas para baixo para o inteiro mais proximo
- Nao invente dados: se um campo opcional nao estiver presente, use "0"

CONTEUDO DA NOTA:
`)
	sb.Write(raw)

	sb.WriteString(`

Responda com um unico objeto JSON neste formato:
{
  "supplier_tax_id": "14 digitos do CNPJ do emitente",
  "supplier_name": "razao social do emitente",
  "invoice_number": "numero da nota",
  "emission_date": "YYYY-MM-DD",
  "total_value": "valor total da nota",
  "freight_value": "valor total do frete",
  "products": [
    {
      "description": "descricao do produto",
      "quantity": 1,
      "unit_value": "valor unitario",
      "total_value": "valor total da linha"
    }
  ]
}

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional.
`)

	return sb.String()
}

// extractedInvoice represents the raw response from Gemini.
type extractedInvoice struct {
	SupplierTaxID string             `json:"supplier_tax_id"`
	SupplierName  string             `json:"supplier_name"`
	InvoiceNumber string             `json:"invoice_number"`
	EmissionDate  string             `json:"emission_date"`
	TotalValue    string             `json:"total_value"`
	FreightValue  string             `json:"freight_value"`
	Products      []extractedProduct `json:"products"`
}

type extractedProduct struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitValue   string `json:"unit_value"`
	TotalValue  string `json:"total_value"`
}

// parseResponse validates and converts the Gemini response into an InvoiceDocument.
func (s *GeminiExtractionService) parseResponse(resp *genai.GenerateContentResponse) (*entity.InvoiceDocument, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"empty response from gemini",
			domainerror.ErrExtractionInvalid,
		)
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"no text content in gemini response",
			domainerror.ErrExtractionInvalid,
		)
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	// Schema-validate before decoding into the typed struct
	var generic interface{}
	if err := json.Unmarshal([]byte(textContent), &generic); err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"gemini response is not valid JSON",
			err,
		)
	}
	if err := s.schema.Validate(generic); err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"gemini response failed schema validation",
			err,
		)
	}

	var extracted extractedInvoice
	if err := json.Unmarshal([]byte(textContent), &extracted); err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"failed to decode gemini response",
			err,
		)
	}

	return s.toDocument(&extracted)
}

// toDocument converts the validated payload into the domain representation.
func (s *GeminiExtractionService) toDocument(extracted *extractedInvoice) (*entity.InvoiceDocument, error) {
	emissionDate, err := time.Parse("2006-01-02", extracted.EmissionDate)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"extracted emission date is invalid",
			err,
		)
	}

	totalValue, err := decimal.NewFromString(extracted.TotalValue)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"extracted invoice total is invalid",
			err,
		)
	}

	freightValue, err := decimal.NewFromString(extracted.FreightValue)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeExtractionInvalid,
			"extracted freight total is invalid",
			err,
		)
	}

	products := make([]entity.InvoiceProduct, 0, len(extracted.Products))
	for i, p := range extracted.Products {
		unitValue, err := decimal.NewFromString(p.UnitValue)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeExtractionInvalid,
				fmt.Sprintf("extracted unit value is invalid on line %d", i+1),
				err,
			)
		}

		lineTotal, err := decimal.NewFromString(p.TotalValue)
		if err != nil {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeExtractionInvalid,
				fmt.Sprintf("extracted line total is invalid on line %d", i+1),
				err,
			)
		}

		products = append(products, entity.InvoiceProduct{
			Description: strings.TrimSpace(p.Description),
			Quantity:    p.Quantity,
			UnitValue:   unitValue,
			TotalValue:  lineTotal,
		})
	}

	return &entity.InvoiceDocument{
		SupplierTaxID: entity.NormalizeTaxID(extracted.SupplierTaxID),
		SupplierName:  strings.TrimSpace(extracted.SupplierName),
		InvoiceNumber: strings.TrimSpace(extracted.InvoiceNumber),
		EmissionDate:  emissionDate,
		TotalValue:    totalValue,
		FreightValue:  freightValue,
		Products:      products,
	}, nil
}
