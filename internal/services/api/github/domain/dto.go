// Package domain holds DTOs and ports for the github http and service contracts
package domain

// Defaults applied when a request leaves a field out
const (
	DefaultTopLimit        = 8
	DefaultMonths          = 12
	RecentMonths           = 3
	DefaultPortfolioMonths = 3
)

// ReposInput selects the repository listing variant
type ReposInput struct {
	// include_details only partitions the cache; defaults to true
	IncludeDetails *bool `json:"include_details,omitempty" example:"true"`
}

// Details resolves the optional flag
func (in ReposInput) Details() bool { return in.IncludeDetails == nil || *in.IncludeDetails }

// TopReposInput bounds the curated selection
type TopReposInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"8"`
}

// ContributionsInput sizes the trailing window
type ContributionsInput struct {
	Months int `json:"months,omitempty" validate:"omitempty,min=1,max=24" example:"12"`
}

// PortfolioInput sizes the contribution window of the portfolio view
type PortfolioInput struct {
	Months int `json:"months,omitempty" validate:"omitempty,min=1,max=24" example:"3"`
}

// OrDefault returns v, or def when v is not positive
func OrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
