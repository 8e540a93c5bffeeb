package domain

// CategoryNature marks a category as a fixed or variable cost.
// It is display metadata only and never drives behavior.
type CategoryNature string

const (
	NatureFixed    CategoryNature = "FIXED"
	NatureVariable CategoryNature = "VARIABLE"
)

// Category is a static definition used to label and group ledger entries.
// Definitions are immutable at runtime and shared read-only.
type Category struct {
	Code        string         `json:"code"` // Registry key, e.g. "rent"
	Kind        LedgerKind     `json:"kind"`
	DisplayName string         `json:"displayName"`
	Nature      CategoryNature `json:"nature"`
	Tag         string         `json:"tag"` // Display marker carried over from the terminal UI
}

// DefaultCategories returns the built-in registry for a ledger kind in its
// declared order. It seeds the categories collection on first run.
func DefaultCategories(kind LedgerKind) []Category {
	if kind == KindReceivable {
		return []Category{
			{Code: "sale", Kind: KindReceivable, DisplayName: "Sales", Nature: NatureVariable, Tag: "🟢"},
			{Code: "service", Kind: KindReceivable, DisplayName: "Services", Nature: NatureVariable, Tag: "🟢"},
			{Code: "commission", Kind: KindReceivable, DisplayName: "Commissions", Nature: NatureVariable, Tag: "🟢"},
			{Code: "rental_income", Kind: KindReceivable, DisplayName: "Rental Income", Nature: NatureFixed, Tag: "🟢"},
			{Code: "investment", Kind: KindReceivable, DisplayName: "Investments", Nature: NatureVariable, Tag: "🟢"},
			{Code: "other_income", Kind: KindReceivable, DisplayName: "Other Income", Nature: NatureVariable, Tag: "🟢"},
		}
	}
	return []Category{
		{Code: "rent", Kind: KindPayable, DisplayName: "Rent", Nature: NatureFixed, Tag: "🔴"},
		{Code: "internet", Kind: KindPayable, DisplayName: "Internet", Nature: NatureFixed, Tag: "🔴"},
		{Code: "electricity", Kind: KindPayable, DisplayName: "Electricity", Nature: NatureVariable, Tag: "🟡"},
		{Code: "water", Kind: KindPayable, DisplayName: "Water", Nature: NatureVariable, Tag: "🟡"},
		{Code: "supplier", Kind: KindPayable, DisplayName: "Supplier", Nature: NatureVariable, Tag: "🟠"},
		{Code: "tax", Kind: KindPayable, DisplayName: "Taxes", Nature: NatureFixed, Tag: "🔴"},
		{Code: "payroll", Kind: KindPayable, DisplayName: "Payroll", Nature: NatureFixed, Tag: "🔴"},
		{Code: "maintenance", Kind: KindPayable, DisplayName: "Maintenance", Nature: NatureVariable, Tag: "🟠"},
		{Code: "marketing", Kind: KindPayable, DisplayName: "Marketing", Nature: NatureVariable, Tag: "🟢"},
		{Code: "other", Kind: KindPayable, DisplayName: "Other", Nature: NatureVariable, Tag: "⚪"},
	}
}
