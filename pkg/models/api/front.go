package api

type Anchor struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FrontProfile struct {
	Front        string   `json:"front"`
	Title        string   `json:"title"`
	MinLatitude  float64  `json:"northern_min_latitude"`
	MaxLongitude float64  `json:"northern_max_longitude"`
	ExtremalAxis string   `json:"extremal_axis"`
	DailyOrder   string   `json:"daily_line_order"`
	MonthlyOrder string   `json:"monthly_line_order"`
	Until        string   `json:"until,omitempty"`
	Anchors      []Anchor `json:"anchors"`
}

type AreaDelta struct {
	Date       string  `json:"date"`
	Events     int     `json:"events"`
	LineDate   string  `json:"line_date"`
	Sign       int     `json:"sign"`
	Unsigned   float64 `json:"unsigned_area_delta"`
	Signed     float64 `json:"signed_area_delta"`
	Cumulative float64 `json:"cumulative_signed_delta"`
}

type FrontSeries struct {
	Front  string      `json:"front"`
	Deltas []AreaDelta `json:"deltas"`
}

type MonthlyMagnitude struct {
	Front     string  `json:"front"`
	Month     string  `json:"month"`
	Magnitude float64 `json:"magnitude"`
}

type FrontSummary struct {
	Front           string  `json:"front"`
	Dates           int     `json:"dates"`
	RussianGains    int     `json:"russian_gains"`
	UkrainianGains  int     `json:"ukrainian_gains"`
	TotalMovement   float64 `json:"total_movement"`
	FinalCumulative float64 `json:"final_cumulative"`
	LargestMove     float64 `json:"largest_move"`
	LargestMoveDate string  `json:"largest_move_date,omitempty"`
}
