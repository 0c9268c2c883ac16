// Package sms wraps the NetGSM SOAP gateway. A bulk dispatch is a single
// call carrying the whole recipient list; the gateway response is returned
// raw and only opportunistically parsed for logging.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sender defines the outbound SMS channel used by the bulk dispatcher.
type Sender interface {
	Send(ctx context.Context, message string, recipients []string) (string, error)
}

// GatewayConfig holds NetGSM gateway credentials and endpoint
type GatewayConfig struct {
	Endpoint string
	Username string
	Password string
	Header   string
}

// Gateway implements Sender against the NetGSM SOAP endpoint
type Gateway struct {
	config GatewayConfig
	client *http.Client
	logger zerolog.Logger
}

// NewGateway creates a new NetGSM gateway client
func NewGateway(config GatewayConfig, logger zerolog.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// soapEnvelope is the smsGonder1NV2 request shape. Recipient numbers are
// embedded as repeated <gsm> elements; filter=0 and TR encoding are fixed by
// the gateway contract.
const soapEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <SOAP-ENV:Body>
    <ns3:smsGonder1NV2 xmlns:ns3="http://sms/">
      <username>%s</username>
      <password>%s</password>
      <header>%s</header>
      <msg>%s</msg>
      <gsm>%s</gsm>
      <filter>0</filter>
      <encoding>TR</encoding>
    </ns3:smsGonder1NV2>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

var returnElement = regexp.MustCompile(`<return>([^<]*)</return>`)

// Send issues one gateway call for the whole recipient list and returns the
// raw response body.
func (g *Gateway) Send(ctx context.Context, message string, recipients []string) (string, error) {
	gsmNumbers := strings.Join(recipients, "</gsm><gsm>")

	body := fmt.Sprintf(soapEnvelope,
		g.config.Username,
		g.config.Password,
		g.config.Header,
		message,
		gsmNumbers,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.Endpoint, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway call failed: %w", err)
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gateway response: %w", err)
	}
	responseText := string(responseBytes)

	// The gateway reports per-call status inside a <return> element. It is
	// logged but not acted upon.
	if m := returnElement.FindStringSubmatch(responseText); m != nil {
		g.logger.Info().Str("result", m[1]).Int("recipients", len(recipients)).Msg("NetGSM response")
	} else {
		g.logger.Warn().Str("body", responseText).Msg("Unrecognized NetGSM response")
	}

	return responseText, nil
}

var nonDigits = regexp.MustCompile(`\D`)

// CleanPhoneNumber normalizes a stored mobile number to the canonical
// international digit string the gateway expects: all non-digits are
// stripped, the domestic trunk "0" is dropped, and the "90" country prefix
// is prepended unless already present.
func CleanPhoneNumber(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if strings.HasPrefix(cleaned, "90") {
		return cleaned
	}
	cleaned = strings.TrimLeft(cleaned, "0")
	return "90" + cleaned
}
