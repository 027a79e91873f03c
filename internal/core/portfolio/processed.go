package portfolio

// Skill is an inferred skill with a level normalized to the top skill
type Skill struct {
	Name  string `json:"name"  example:"python"`
	Level int    `json:"level" example:"100"`
}

// ProfileSummary is the display subset of Profile
type ProfileSummary struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// Experience summarizes tenure and activity
type Experience struct {
	TopLanguages []string `json:"top_languages"`
	YearsActive  float64  `json:"years_active"`
	// longest run of active days inside the window, not the run ending today
	ContributionStreak int      `json:"contribution_streak"`
	Recommendations    []string `json:"recommendations"`
}

// LanguageCount is one histogram bar
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// RepositorySummary aggregates the repository list
type RepositorySummary struct {
	TopRepos             []Repository    `json:"top_repos"`
	LanguageDistribution []LanguageCount `json:"language_distribution"`
	StarsCount           int             `json:"stars_count"`
	ForksCount           int             `json:"forks_count"`
}

// ContributionSummary carries the contribution totals forward
type ContributionSummary struct {
	Total             int                   `json:"total"`
	ByMonth           []MonthlyContribution `json:"by_month"`
	ActivityBreakdown *ActivityBreakdown    `json:"activity_breakdown"`
}

// Processed is the derived portfolio view
type Processed struct {
	Skills        []Skill             `json:"skills"`
	Profile       ProfileSummary      `json:"profile"`
	Experience    Experience          `json:"experience"`
	Repositories  RepositorySummary   `json:"repositories"`
	Contributions ContributionSummary `json:"contributions"`
}
