package entity

// DashboardStats is derived on every read from the fan directory and the
// question log; it is never stored.
type DashboardStats struct {
	TotalMessages int    `json:"totalMessages"`
	ActiveFans    int    `json:"activeFans"`
	Revenue       string `json:"revenue"` // Always a fixed 2-decimal string, locale-independent.
	AiQuestions   int    `json:"aiQuestions"`
}
