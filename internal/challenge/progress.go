package challenge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/eod-app/eod-lambda/internal/response"
	util "github.com/eod-app/eod-lambda/internal/utils"
)

type Progress struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
	Percent int     `json:"percent"`
	Label   string  `json:"label"`
}

// ComputeProgress reduces the challenge's matching responses over its
// inclusive date range. Percent is clamped at 100 and a zero (or negative)
// goal divides as though it were 1.
func ComputeProgress(c MonthlyChallenge, all map[util.Day][]response.DailyResponse, isYesNo bool) Progress {
	current := 0.0
	for day, bucket := range all {
		if !day.Between(c.StartDate, c.EndDate) {
			continue
		}
		for _, r := range bucket {
			if r.QuestionID != c.QuestionID {
				continue
			}
			switch c.GoalType {
			case GoalYesCount:
				if r.Response.IsTrue() {
					current++
				}
			case GoalSum:
				current += r.Response.NumberOrZero()
			case GoalCountEntries:
				current++
			}
		}
	}

	divisor := c.GoalValue
	if divisor <= 0 {
		divisor = 1
	}
	percent := int(math.Round(current / divisor * 100))
	if percent > 100 {
		percent = 100
	}

	label := strconv.FormatFloat(current, 'f', -1, 64)
	if isYesNo && c.GoalType == GoalYesCount {
		label = fmt.Sprintf("%d yes", int(current))
	}

	return Progress{
		Current: current,
		Goal:    c.GoalValue,
		Percent: percent,
		Label:   label,
	}
}
