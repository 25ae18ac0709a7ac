package models

import "time"

// NewsItem is one fetched article. PublishedAt is timezone-naive.
type NewsItem struct {
	PublishedAt time.Time
	Title       string
	Description string
}
