// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueImportSummaryEmail queues a summary notification for a committed import batch.
func (s *Service) QueueImportSummaryEmail(ctx context.Context, input adapter.QueueImportSummaryInput) error {
	subject := fmt.Sprintf("Importacao concluida: %d ativos da NF %s", input.AssetCount, input.InvoiceNumber)

	templateData := map[string]interface{}{
		"recipient_name": input.RecipientName,
		"supplier_name":  input.SupplierName,
		"invoice_number": input.InvoiceNumber,
		"asset_count":    input.AssetCount,
		"total_value":    input.TotalValue,
		"assets_url":     s.appBaseURL + "/assets",
	}

	job := entity.NewEmailJob(
		entity.TemplateImportSummary,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue import summary email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
