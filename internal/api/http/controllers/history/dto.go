package history

import "time"

// HistoryItem — одна полученная доставка (для GET /api/v1/work-units).
type HistoryItem struct {
	ID         string    `json:"id"`
	Definition string    `json:"definition"`
	Topic      string    `json:"topic"`
	Partition  int       `json:"partition"`
	Offset     int64     `json:"offset"`
	ReceivedAt time.Time `json:"received_at"`
}

// HistoryResponse — ответ со списком доставок.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
