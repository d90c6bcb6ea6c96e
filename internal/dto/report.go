package dto

type EmailReportRequest struct {
	Email string `json:"email"`
}

// EmailReportParams are the template variables of the report email.
type EmailReportParams struct {
	ToEmail    string `json:"to_email"`
	ToName     string `json:"to_name"`
	TotalSpent string `json:"total_spent"`
	Budget     string `json:"budget"`
	Message    string `json:"message"`
}

type EmailReportResult struct {
	Recipient string `json:"recipient"`
	Month     string `json:"month"`
}

type NotificationRequest struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type NotificationResult struct {
	MessageID string `json:"messageId"`
}
