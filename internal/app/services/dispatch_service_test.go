package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

type fakeRecipients struct {
	users []*models.User
	err   error
}

func (f *fakeRecipients) GetByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	return f.users, f.err
}

type fakeTemplates struct {
	template *models.EmailTemplate
	err      error
}

func (f *fakeTemplates) GetByID(ctx context.Context, id int64) (*models.EmailTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.template, nil
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeEmailSender struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo string
}

func (f *fakeEmailSender) Send(to, subject, htmlBody string) error {
	if to == f.failTo {
		return errors.New("smtp rejected")
	}
	f.mu.Lock()
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: htmlBody})
	f.mu.Unlock()
	return nil
}

type fakeSMSSender struct {
	calls      int
	message    string
	recipients []string
	result     string
	err        error
}

func (f *fakeSMSSender) Send(ctx context.Context, message string, recipients []string) (string, error) {
	f.calls++
	f.message = message
	f.recipients = recipients
	return f.result, f.err
}

func strPtr(s string) *string { return &s }

func testUser(id int64, name, lastname, email, mobile string) *models.User {
	u := &models.User{ID: id, Name: name, Email: email}
	if lastname != "" {
		u.Lastname = strPtr(lastname)
	}
	if mobile != "" {
		u.Mobile = strPtr(mobile)
	}
	return u
}

func newTestDispatchService(recipients *fakeRecipients, templates *fakeTemplates, emailer *fakeEmailSender, smser *fakeSMSSender) DispatchService {
	return NewDispatchService(recipients, templates, emailer, smser, zerolog.Nop())
}

func TestSendBulkEmailRequiresUserIDs(t *testing.T) {
	svc := newTestDispatchService(&fakeRecipients{}, &fakeTemplates{}, &fakeEmailSender{}, &fakeSMSSender{})

	_, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSendBulkEmailRequiresContentOrTemplate(t *testing.T) {
	svc := newTestDispatchService(&fakeRecipients{}, &fakeTemplates{}, &fakeEmailSender{}, &fakeSMSSender{})

	_, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{UserIDs: []int64{1}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSendBulkEmailDanglingTemplateFails(t *testing.T) {
	emailer := &fakeEmailSender{}
	templateID := int64(99)
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{testUser(1, "Berk", "Can", "berk@example.com", "")}},
		&fakeTemplates{err: apperrors.ErrTemplateNotFound},
		emailer,
		&fakeSMSSender{},
	)

	_, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{
		UserIDs:    []int64{1},
		TemplateID: &templateID,
	})
	assert.ErrorIs(t, err, apperrors.ErrTemplateNotFound)
	assert.Empty(t, emailer.sent)
}

func TestSendBulkEmailPersonalizesPerRecipient(t *testing.T) {
	emailer := &fakeEmailSender{}
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{
			testUser(1, "Berk", "Can", "berk@example.com", ""),
		}},
		&fakeTemplates{},
		emailer,
		&fakeSMSSender{},
	)

	resp, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{
		UserIDs:    []int64{1},
		Subject:    "Merhaba [isim]",
		Message:    "Sayın [isim] [soyisim] ([email]), [metin]",
		CustomText: "kampanya",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.SentCount)

	require.Len(t, emailer.sent, 1)
	assert.Equal(t, "Merhaba Berk", emailer.sent[0].Subject)
	assert.Equal(t, "Sayın Berk Can (berk@example.com), kampanya", emailer.sent[0].Body)
}

func TestSendBulkEmailTemplateOverridesRawContent(t *testing.T) {
	emailer := &fakeEmailSender{}
	templateID := int64(3)
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{testUser(1, "Berk", "", "berk@example.com", "")}},
		&fakeTemplates{template: &models.EmailTemplate{
			ID:      3,
			Subject: "Şablon konusu",
			Content: "Şablon gövdesi",
		}},
		emailer,
		&fakeSMSSender{},
	)

	_, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{
		UserIDs:    []int64{1},
		Subject:    "ham konu",
		Message:    "ham gövde",
		TemplateID: &templateID,
	})
	require.NoError(t, err)
	require.Len(t, emailer.sent, 1)
	assert.Equal(t, "Şablon konusu", emailer.sent[0].Subject)
	assert.Equal(t, "Şablon gövdesi", emailer.sent[0].Body)
}

func TestSendBulkEmailLedgersEveryRecipient(t *testing.T) {
	emailer := &fakeEmailSender{failTo: "fails@example.com"}
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{
			testUser(1, "A", "", "a@example.com", ""),
			testUser(2, "B", "", "fails@example.com", ""),
			testUser(3, "C", "", "", ""), // no email address
		}},
		&fakeTemplates{},
		emailer,
		&fakeSMSSender{},
	)

	resp, err := svc.SendBulkEmail(context.Background(), &dto.SendEmailRequest{
		UserIDs: []int64{1, 2, 3},
		Subject: "konu",
		Message: "gövde",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SentCount)
	require.Len(t, resp.Results, 3)

	byUser := make(map[int64]dto.RecipientResult)
	for _, r := range resp.Results {
		byUser[r.UserID] = r
	}
	assert.True(t, byUser[1].Sent)
	assert.False(t, byUser[2].Sent)
	assert.Equal(t, "smtp rejected", byUser[2].Error)
	assert.False(t, byUser[3].Sent)
	assert.Equal(t, "no email address", byUser[3].Error)
}

func TestSendBulkSMSPreconditions(t *testing.T) {
	smser := &fakeSMSSender{}
	svc := newTestDispatchService(&fakeRecipients{}, &fakeTemplates{}, &fakeEmailSender{}, smser)

	_, err := svc.SendBulkSMS(context.Background(), &dto.SendSMSRequest{Message: "mesaj"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.SendBulkSMS(context.Background(), &dto.SendSMSRequest{UserIDs: []int64{1}, Message: "   "})
	assert.ErrorIs(t, err, apperrors.ErrEmptyMessage)

	assert.Zero(t, smser.calls)
}

func TestSendBulkSMSNoReachableNumbersSkipsGateway(t *testing.T) {
	smser := &fakeSMSSender{}
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{
			testUser(1, "A", "", "a@example.com", ""),
		}},
		&fakeTemplates{},
		&fakeEmailSender{},
		smser,
	)

	_, err := svc.SendBulkSMS(context.Background(), &dto.SendSMSRequest{UserIDs: []int64{1}, Message: "mesaj"})
	assert.ErrorIs(t, err, apperrors.ErrNoValidRecipients)
	assert.Zero(t, smser.calls)
}

func TestSendBulkSMSCleansNumbersAndCallsOnce(t *testing.T) {
	smser := &fakeSMSSender{result: "00 12345"}
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{
			testUser(1, "A", "", "", "0532 123 45 67"),
			testUser(2, "B", "", "", ""),
			testUser(3, "C", "", "", "905559876543"),
		}},
		&fakeTemplates{},
		&fakeEmailSender{},
		smser,
	)

	resp, err := svc.SendBulkSMS(context.Background(), &dto.SendSMSRequest{UserIDs: []int64{1, 2, 3}, Message: "Duyuru"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.SentCount)
	assert.Equal(t, "00 12345", resp.Result)

	assert.Equal(t, 1, smser.calls)
	assert.Equal(t, "Duyuru", smser.message)
	assert.Equal(t, []string{"905321234567", "905559876543"}, smser.recipients)
}

func TestSendBulkSMSTransportFailure(t *testing.T) {
	smser := &fakeSMSSender{err: errors.New("connection refused")}
	svc := newTestDispatchService(
		&fakeRecipients{users: []*models.User{testUser(1, "A", "", "", "5321234567")}},
		&fakeTemplates{},
		&fakeEmailSender{},
		smser,
	)

	_, err := svc.SendBulkSMS(context.Background(), &dto.SendSMSRequest{UserIDs: []int64{1}, Message: "mesaj"})
	assert.ErrorIs(t, err, apperrors.ErrTransportFailure)
}
