package dto

// EmailJSSendRequest is the body of the EmailJS send endpoint.
type EmailJSSendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams EmailReportParams `json:"template_params"`
}
