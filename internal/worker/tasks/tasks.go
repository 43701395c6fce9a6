package worker_task

const TaskSendPayReportEmail = "email:send_pay_report"

const TaskCloseDanglingEinsaetze = "low:close_dangling_einsaetze"

const TaskWeeklyPayReportEmails = "low:weekly_pay_report_emails"

// SendPayReportEmailPayload verschickt den Bericht eines einzelnen Workers.
// Since (2006-01-02) begrenzt den Berichtszeitraum, leer = gesamte Historie.
type SendPayReportEmailPayload struct {
	WorkerID string `json:"worker_id"`
	Since    string `json:"since,omitempty"`
}
