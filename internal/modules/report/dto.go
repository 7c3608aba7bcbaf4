package report

import "time"

type PersonMonthStatus struct {
	PersonID        string     `json:"person_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"` // "complete" | "incomplete"
	LastCycleAt     *time.Time `json:"last_cycle_at,omitempty"`
	OpenDefectCount int64      `json:"open_defect_count"`
}

type MonthlySummary struct {
	Month      string              `json:"month"`
	Total      int                 `json:"total"`
	Complete   int                 `json:"complete"`
	Incomplete int                 `json:"incomplete"`
	PerPerson  []PersonMonthStatus `json:"per_person"`
}

type PersonQuarterStatus struct {
	PersonID    string          `json:"person_id"`
	Name        string          `json:"name"`
	MonthFlags  map[string]bool `json:"month_flags"`
	AllComplete bool            `json:"all_complete"`
}

type QuarterlyCompleteness struct {
	Quarter   string                `json:"quarter"`
	Months    []string              `json:"months"`
	PerPerson []PersonQuarterStatus `json:"per_person"`
}
