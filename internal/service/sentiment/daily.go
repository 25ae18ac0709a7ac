package sentiment

import (
	"math"
	"sort"
	"time"

	"OilPulse/internal/domain/models"
	domsvc "OilPulse/internal/domain/service"
	"OilPulse/internal/timeseries"
	"OilPulse/pkg/util"
)

// DailyScores turns articles into one sentiment record per calendar day:
// each article's title and description are scored together, the compound is
// weighted by its own magnitude so strong opinions count more, per-day
// scores are averaged, and the daily series is rescaled into [-0.5, 0.5].
func DailyScores(items []models.NewsItem, scorer domsvc.SentimentScorer) []models.SentimentRecord {
	if len(items) == 0 {
		return nil
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, it := range items {
		compound := scorer.Score(it.Title + " " + it.Description)
		weighted := compound * math.Sqrt(math.Abs(compound))
		d := util.Day(it.PublishedAt)
		sums[d] += weighted
		counts[d]++
	}

	days := make([]time.Time, 0, len(sums))
	for d := range sums {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	means := make([]float64, len(days))
	for i, d := range days {
		means[i] = sums[d] / float64(counts[d])
	}

	state := timeseries.FitRange(rowsOf(means), -0.5, 0.5)
	scaled := state.TransformColumn(means)

	out := make([]models.SentimentRecord, len(days))
	for i, d := range days {
		out[i] = models.SentimentRecord{Date: d, Score: scaled[i]}
	}
	return out
}

func rowsOf(values []float64) [][]float64 {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return rows
}
