package controller

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asset-registry/backend/internal/application/usecase/importer"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/domain/importplan"
	"github.com/asset-registry/backend/internal/integration/entrypoint/dto"
)

// ImportController handles the invoice-import wizard endpoints: extract,
// plan and commit.
type ImportController struct {
	extractUseCase *importer.ExtractInvoiceUseCase
	planUseCase    *importer.PlanImportUseCase
	commitUseCase  *importer.CommitImportUseCase
}

// NewImportController creates a new import controller instance.
func NewImportController(
	extractUseCase *importer.ExtractInvoiceUseCase,
	planUseCase *importer.PlanImportUseCase,
	commitUseCase *importer.CommitImportUseCase,
) *ImportController {
	return &ImportController{
		extractUseCase: extractUseCase,
		planUseCase:    planUseCase,
		commitUseCase:  commitUseCase,
	}
}

// Extract handles POST /imports/extract requests.
func (c *ImportController) Extract(ctx *gin.Context) {
	var req dto.ExtractInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "content must be base64-encoded",
		})
		return
	}

	output, err := c.extractUseCase.Execute(ctx.Request.Context(), importer.ExtractInvoiceInput{Raw: raw})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExtractInvoiceResponse(output))
}

// Plan handles POST /imports/plan requests.
func (c *ImportController) Plan(ctx *gin.Context) {
	var req dto.PlanImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	doc, err := req.Document.ToInvoiceDocument()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice document: " + err.Error(),
		})
		return
	}

	output, err := c.planUseCase.Execute(importer.PlanImportInput{
		Document:           doc,
		SelectedQuantities: req.SelectedQuantities,
		AllocateFreight:    req.AllocateFreight,
		FreightScope:       importplan.FreightScope(req.FreightScope),
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanImportResponse(output))
}

// Commit handles POST /imports/commit requests.
func (c *ImportController) Commit(ctx *gin.Context) {
	var req dto.CommitImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	emissionDate, err := time.Parse("2006-01-02", req.EmissionDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "emission_date must be a YYYY-MM-DD date",
		})
		return
	}

	items, err := dto.ToCommitItems(req.Items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid import items: " + err.Error(),
		})
		return
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), importer.CommitImportInput{
		SupplierTaxID: req.SupplierTaxID,
		SupplierName:  req.SupplierName,
		InvoiceNumber: req.InvoiceNumber,
		EmissionDate:  emissionDate,
		NotifyEmail:   req.NotifyEmail,
		NotifyName:    req.NotifyName,
		Items:         items,
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCommitImportResponse(output))
}

// handleImportError handles import errors and returns appropriate HTTP responses.
func (c *ImportController) handleImportError(ctx *gin.Context, err error) {
	var importErr *domainerror.ImportError
	if errors.As(err, &importErr) {
		resp := dto.ErrorResponse{
			Error: importErr.Message,
			Code:  string(importErr.Code),
		}
		if importErr.Row >= 0 {
			row := importErr.Row
			resp.Row = &row
		}
		ctx.JSON(importErrorStatus(importErr.Code), resp)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// importErrorStatus maps import error codes to HTTP status codes.
func importErrorStatus(code domainerror.ImportErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptySelection,
		domainerror.ErrCodeSelectionOutOfRange,
		domainerror.ErrCodeImportRowInvalid,
		domainerror.ErrCodeInvalidFreightScope:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvoiceSupplierNotFound:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvoiceNotParsable,
		domainerror.ErrCodeExtractionInvalid:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeExtractionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
