package models

// Offering labels shown on the quote form. The endpoint treats them as
// advisory unless strict validation is switched on.
var Services = []string{
	"Web App Development",
	"Mobile App Development",
	"UI/UX Design",
	"Backend & API Development",
	"Cloud & DevOps",
	"QA & Testing",
	"Other",
}

var Budgets = []string{
	"Under $2,500",
	"$2,500 – $6,500",
	"$6,500 – $15,000",
	"$15,000+",
	"Not sure yet",
}

// QuoteOptions is the payload of GET /api/options.
type QuoteOptions struct {
	Services []string `json:"services"`
	Budgets  []string `json:"budgets"`
}

func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{
		Services: append([]string(nil), Services...),
		Budgets:  append([]string(nil), Budgets...),
	}
}
