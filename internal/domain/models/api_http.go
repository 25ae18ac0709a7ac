package models

// Requests and response rows for the serving endpoints. Defined in domain
// for consistency and reuse.

// RangeRequest carries the optional inclusive date-range filter. Bounds only
// take effect when both are present; a lone bound is ignored downstream.
type RangeRequest struct {
	Start string `query:"start" json:"start"`
	End   string `query:"end" json:"end"`
}

// NewsRequest adds the result cap for the news endpoint.
type NewsRequest struct {
	Start string `query:"start" json:"start"`
	End   string `query:"end" json:"end"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=100"`
}

// PredictionRow is one serialized forecast row.
type PredictionRow struct {
	Date      string  `json:"date"`
	Actual    float64 `json:"Actual"`
	Predicted float64 `json:"Predicted"`
}

// SentimentRow is one serialized daily sentiment row.
type SentimentRow struct {
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
}

// NewsRow is one serialized article, newest first.
type NewsRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
}
