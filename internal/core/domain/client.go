package domain

// Client is a customer of the business, referenced by orders.
type Client struct {
	ClientID string `json:"clientID"` // Sequential, e.g. CLI001
	Name     string `json:"name"`
	Email    string `json:"email"` // Unique, case-insensitive
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
