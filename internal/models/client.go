package models

// Client is the persisted form of a business client.
type Client struct {
	ClientID string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	Active   bool   `json:"active"`
	AuditFields
}
