// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueImportSummaryEmail queues a summary notification for a committed import batch.
	QueueImportSummaryEmail(ctx context.Context, input QueueImportSummaryInput) error
}

// QueueImportSummaryInput represents the input for queueing an import summary email.
type QueueImportSummaryInput struct {
	RecipientEmail string
	RecipientName  string
	SupplierName   string
	InvoiceNumber  string
	AssetCount     int
	TotalValue     string // Formatted amount; templates never do money math
}
