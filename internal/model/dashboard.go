package model

// DashboardSummary holds row counts shown on the admin dashboard.
type DashboardSummary struct {
	Categories int64 `json:"categories"`
	Posts      int64 `json:"posts"`
	Faculties  int64 `json:"faculties"`
	Users      int64 `json:"users"`
	// Sliders has no backing table and is always zero.
	Sliders int64 `json:"sliders"`
}
