package models

// Category is the persisted form of a category definition. All
// definitions of both ledger kinds share one collection file.
type Category struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Nature      string `json:"fixed_or_variable"`
	Tag         string `json:"tag"`
}
