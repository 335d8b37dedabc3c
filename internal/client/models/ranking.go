package models

// RankingEntry is one row of the per-category ranking computed by the
// server.
type RankingEntry struct {
	UserID    int64   `json:"userId"`
	Username  string  `json:"username"`
	BestScore float64 `json:"bestScore"`
}
