package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/email"
	"github.com/beartshare/admin-api/internal/pkg/sms"
	"github.com/beartshare/admin-api/internal/pkg/tags"
)

// RecipientSource resolves recipient identifiers to full user records in one
// bulk lookup. Result order is unspecified.
type RecipientSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*models.User, error)
}

// TemplateSource loads email templates by ID
type TemplateSource interface {
	GetByID(ctx context.Context, id int64) (*models.EmailTemplate, error)
}

// DispatchService orchestrates bulk email and SMS sends: recipient
// resolution, optional template load, per-recipient personalization and the
// outbound channel call.
type DispatchService interface {
	SendBulkEmail(ctx context.Context, req *dto.SendEmailRequest) (*dto.SendEmailResponse, error)
	SendBulkSMS(ctx context.Context, req *dto.SendSMSRequest) (*dto.SendSMSResponse, error)
}

// dispatchService implements DispatchService
type dispatchService struct {
	recipients RecipientSource
	templates  TemplateSource
	emailer    email.Sender
	smser      sms.Sender
	logger     zerolog.Logger
}

// NewDispatchService creates a new dispatch service
func NewDispatchService(
	recipients RecipientSource,
	templates TemplateSource,
	emailer email.Sender,
	smser sms.Sender,
	logger zerolog.Logger,
) DispatchService {
	return &dispatchService{
		recipients: recipients,
		templates:  templates,
		emailer:    emailer,
		smser:      smser,
		logger:     logger,
	}
}

// SendBulkEmail resolves the recipients, picks the message source (template
// over raw subject/message), personalizes subject and body per recipient and
// fans the sends out concurrently. Every recipient gets an entry in the
// result ledger; one failed send does not abort the others.
func (s *dispatchService) SendBulkEmail(ctx context.Context, req *dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	if len(req.UserIDs) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidInput, "user IDs required")
	}

	subject := req.Subject
	message := req.Message

	// A template id overrides whatever raw pair came with the request. A
	// dangling id fails the dispatch outright instead of silently falling
	// back to the raw fields.
	if req.TemplateID != nil {
		template, err := s.templates.GetByID(ctx, *req.TemplateID)
		if err != nil {
			return nil, err
		}
		subject = template.Subject
		message = template.Content
	} else if strings.TrimSpace(subject) == "" && strings.TrimSpace(message) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidInput, "subject/message or template ID required")
	}

	users, err := s.recipients.GetByIDs(ctx, req.UserIDs)
	if err != nil {
		return nil, fmt.Errorf("error resolving recipients: %w", err)
	}

	results := make([]dto.RecipientResult, len(users))

	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user *models.User) {
			defer wg.Done()
			results[i] = s.sendOneEmail(user, subject, message, req.CustomText)
		}(i, user)
	}
	wg.Wait()

	sent := 0
	for _, result := range results {
		if result.Sent {
			sent++
		}
	}

	s.logger.Info().
		Int("requested", len(req.UserIDs)).
		Int("resolved", len(users)).
		Int("sent", sent).
		Msg("Bulk email dispatch finished")

	return &dto.SendEmailResponse{
		Success:   true,
		SentCount: sent,
		Results:   results,
	}, nil
}

// sendOneEmail personalizes and submits a single recipient's message
func (s *dispatchService) sendOneEmail(user *models.User, subject, message, customText string) dto.RecipientResult {
	result := dto.RecipientResult{UserID: user.ID, Email: user.Email}

	if user.Email == "" {
		result.Error = "no email address"
		return result
	}

	values := tags.Values{
		FirstName:  user.Name,
		LastName:   user.LastnameOrEmpty(),
		Email:      user.Email,
		CustomText: customText,
	}

	personalizedSubject := tags.Replace(subject, values)
	personalizedBody := tags.Replace(message, values)

	if err := s.emailer.Send(user.Email, personalizedSubject, personalizedBody); err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Email send failed")
		result.Error = err.Error()
		return result
	}

	result.Sent = true
	return result
}

// SendBulkSMS resolves the recipients, drops those without a phone value,
// normalizes the remaining numbers and issues exactly one gateway call with
// the shared message. No tag substitution is applied to SMS bodies.
func (s *dispatchService) SendBulkSMS(ctx context.Context, req *dto.SendSMSRequest) (*dto.SendSMSResponse, error) {
	if len(req.UserIDs) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidInput, "user IDs required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	users, err := s.recipients.GetByIDs(ctx, req.UserIDs)
	if err != nil {
		return nil, fmt.Errorf("error resolving recipients: %w", err)
	}

	var phoneNumbers []string
	for _, user := range users {
		if user.HasMobile() {
			phoneNumbers = append(phoneNumbers, sms.CleanPhoneNumber(*user.Mobile))
		}
	}

	// The gateway is never called with an empty recipient list; a dispatch
	// that filters down to nothing is an error, not a "0 sent" success.
	if len(phoneNumbers) == 0 {
		return nil, apperrors.ErrNoValidRecipients
	}

	result, err := s.smser.Send(ctx, req.Message, phoneNumbers)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTransportFailure) {
			err = apperrors.NewCustomError(apperrors.ErrTransportFailure, err.Error())
		}
		return nil, err
	}

	s.logger.Info().
		Int("requested", len(req.UserIDs)).
		Int("sent", len(phoneNumbers)).
		Msg("Bulk SMS dispatch finished")

	return &dto.SendSMSResponse{
		Success:   true,
		SentCount: len(phoneNumbers),
		Result:    result,
	}, nil
}
