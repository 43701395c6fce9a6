package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/config"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendPayReportEmail(to string, name string, report *entity.PayReport, since string) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) SendPayReportEmail(to string, name string, report *entity.PayReport, since string) error {
	log.Info().Msg("Mailer: Send pay report email hit.")
	url := m.MailtrapUrl
	log.Info().Str("url", url).Msg("Mailer: target URL")

	period := "entire history"
	if since != "" {
		period = fmt.Sprintf("since %s", since)
	}

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Schicht Meister - Verdienstbericht",
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject":  fmt.Sprintf("Your pay report (%s)", period),
		"text":     buildReportText(name, report, period),
		"category": "Pay Report",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when send the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}

// buildReportText rendert die Zusammenfassung als schlichten Text. HTML-Mails
// sind bewusst außen vor, die Clients der Fahrer rendern Text zuverlässiger.
func buildReportText(name string, report *entity.PayReport, period string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\nhere is your pay report (%s):\n\n", name, period)
	fmt.Fprintf(&b, "Total pay:        %s EUR\n", report.TotalPay.StringFixed(2))
	fmt.Fprintf(&b, "Paid minutes:     %d (%d paid assignments)\n", report.PaidMinutes, report.PaidEinsaetze)
	fmt.Fprintf(&b, "Engaged minutes:  %d in %d assignments\n", report.TotalEinsatzMinutes, report.TotalEinsaetze)
	fmt.Fprintf(&b, "Online minutes:   %d in %d shifts\n\n", report.TotalSchichtMinutes, report.TotalSchichten)

	if len(report.Categories) > 0 {
		b.WriteString("By category:\n")
		for _, def := range category.AllCategories() {
			info, ok := report.Categories[def.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  %-18s %5d min (%d)\n", def.Label, info.Minutes, info.EinsatzCount)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generated at %s.\n", report.GeneratedAt.Format("Mon, 2 Jan 2006 15:04"))
	return b.String()
}
