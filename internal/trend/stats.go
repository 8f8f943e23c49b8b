package trend

import (
	"math"
	"sort"

	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

// seriesLimit caps chart series at the most recent points; older ones are
// dropped, not averaged.
const seriesLimit = 14

// WindowResponses collects one question's responses from every bucket on or
// after cutoff. Bucket order is irrelevant for aggregate stats.
func WindowResponses(all map[util.Day][]response.DailyResponse, questionID uuid.UUID, cutoff util.Day) []response.DailyResponse {
	var out []response.DailyResponse
	for day, bucket := range all {
		if day < cutoff {
			continue
		}
		for _, r := range bucket {
			if r.QuestionID == questionID {
				out = append(out, r)
			}
		}
	}
	return out
}

// Summarize computes the display statistics for one question over a window of
// `days` days.
//
// For number questions the sum includes zero-valued entries while the average
// excludes them: a zero entry counts as "no data" for averaging but still
// contributes to the raw total. Both behaviors are kept on purpose.
func Summarize(qType question.QuestionType, responses []response.DailyResponse, days int) QuestionStats {
	stats := QuestionStats{
		Entries:      len(responses),
		ResponseRate: responseRate(len(responses), days),
	}

	switch qType {
	case question.TypeYesNo:
		yes := 0
		for _, r := range responses {
			if r.Response.IsTrue() {
				yes++
			}
		}
		percentage := 0.0
		if len(responses) > 0 {
			percentage = round1(float64(yes) / float64(len(responses)) * 100)
		}
		stats.YesNo = &YesNoStats{
			YesCount:   yes,
			Percentage: percentage,
		}

	case question.TypeNumber:
		sum := 0.0
		nonZeroSum := 0.0
		nonZeroCount := 0
		for _, r := range responses {
			n := r.Response.NumberOrZero()
			sum += n
			if n != 0 {
				nonZeroSum += n
				nonZeroCount++
			}
		}
		average := 0.0
		if nonZeroCount > 0 {
			average = round1(nonZeroSum / float64(nonZeroCount))
		}
		stats.Number = &NumberStats{
			Sum:     sum,
			Average: average,
		}

	case question.TypeText:
		// No numeric aggregation for free-text questions.
	}

	return stats
}

// Series prepares the chart series: chronological order, most recent
// seriesLimit points. Yes/no answers map to 1/0.
func Series(qType question.QuestionType, responses []response.DailyResponse) []Point {
	sorted := make([]response.DailyResponse, len(responses))
	copy(sorted, responses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	if len(sorted) > seriesLimit {
		sorted = sorted[len(sorted)-seriesLimit:]
	}

	points := make([]Point, 0, len(sorted))
	for _, r := range sorted {
		var value float64
		switch qType {
		case question.TypeYesNo:
			if r.Response.IsTrue() {
				value = 1
			}
		case question.TypeNumber:
			value = r.Response.NumberOrZero()
		default:
			continue
		}
		points = append(points, Point{Date: r.Date, Value: value})
	}
	return points
}

// responseRate is entries-in-window over window size, as a whole percentage.
func responseRate(entries, days int) int {
	if days <= 0 {
		return 0
	}
	return int(math.Round(float64(entries) / float64(days) * 100))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
