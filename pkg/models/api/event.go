package api

type Event struct {
	ID        string  `json:"data_id"`
	Date      string  `json:"event_date"`
	Type      string  `json:"event_type"`
	SubType   string  `json:"sub_event_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type Explosions struct {
	Month   string       `json:"month,omitempty"`
	Events  []Event      `json:"events"`
	ByMonth []MonthCount `json:"by_month"`
}
