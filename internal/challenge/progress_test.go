package challenge_test

import (
	"testing"

	"github.com/eod-app/eod-lambda/internal/challenge"
	"github.com/eod-app/eod-lambda/internal/response"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

func sumChallenge(q uuid.UUID, goal float64) challenge.MonthlyChallenge {
	return challenge.MonthlyChallenge{
		ID:         uuid.New(),
		QuestionID: q,
		GoalType:   challenge.GoalSum,
		GoalValue:  goal,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-31",
		Active:     true,
	}
}

func numberBuckets(q uuid.UUID, values map[util.Day]float64) map[util.Day][]response.DailyResponse {
	all := make(map[util.Day][]response.DailyResponse)
	for day, v := range values {
		all[day] = []response.DailyResponse{
			{QuestionID: q, Date: day, Response: response.NumberValue(v)},
		}
	}
	return all
}

func TestComputeProgressSum(t *testing.T) {
	q := uuid.New()
	all := numberBuckets(q, map[util.Day]float64{
		"2026-03-01": 5,
		"2026-03-02": 5,
		"2026-03-03": 5,
	})

	prog := challenge.ComputeProgress(sumChallenge(q, 20), all, false)
	if prog.Current != 15 {
		t.Errorf("Current = %v, want 15", prog.Current)
	}
	if prog.Percent != 75 {
		t.Errorf("Percent = %d, want 75", prog.Percent)
	}
	if prog.Label != "15" {
		t.Errorf("Label = %q, want \"15\"", prog.Label)
	}
}

func TestComputeProgressClampsAt100(t *testing.T) {
	q := uuid.New()
	all := numberBuckets(q, map[util.Day]float64{
		"2026-03-01": 10,
		"2026-03-02": 10,
		"2026-03-03": 10,
	})

	prog := challenge.ComputeProgress(sumChallenge(q, 20), all, false)
	if prog.Percent != 100 {
		t.Errorf("Percent = %d, want clamp at 100", prog.Percent)
	}
	if prog.Current != 30 {
		t.Errorf("Current = %v, want 30 (unclamped)", prog.Current)
	}
}

func TestComputeProgressZeroGoal(t *testing.T) {
	q := uuid.New()
	all := numberBuckets(q, map[util.Day]float64{"2026-03-01": 3})

	prog := challenge.ComputeProgress(sumChallenge(q, 0), all, false)
	// A zero goal divides as though it were 1, then clamps.
	if prog.Percent != 100 {
		t.Errorf("Percent = %d, want 100", prog.Percent)
	}
	if prog.Goal != 0 {
		t.Errorf("Goal = %v, reported goal should stay 0", prog.Goal)
	}
}

func TestComputeProgressYesCount(t *testing.T) {
	q := uuid.New()
	all := map[util.Day][]response.DailyResponse{
		"2026-03-01": {{QuestionID: q, Date: "2026-03-01", Response: response.YesNoValue(true)}},
		"2026-03-02": {{QuestionID: q, Date: "2026-03-02", Response: response.YesNoValue(false)}},
		"2026-03-03": {{QuestionID: q, Date: "2026-03-03", Response: response.YesNoValue(true)}},
		// Outside the range; must not count.
		"2026-04-01": {{QuestionID: q, Date: "2026-04-01", Response: response.YesNoValue(true)}},
	}

	c := challenge.MonthlyChallenge{
		QuestionID: q,
		GoalType:   challenge.GoalYesCount,
		GoalValue:  10,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-31",
	}

	prog := challenge.ComputeProgress(c, all, true)
	if prog.Current != 2 {
		t.Errorf("Current = %v, want 2", prog.Current)
	}
	if prog.Label != "2 yes" {
		t.Errorf("Label = %q, want \"2 yes\"", prog.Label)
	}
}

func TestComputeProgressCountEntries(t *testing.T) {
	q := uuid.New()
	all := map[util.Day][]response.DailyResponse{
		"2026-03-01": {{QuestionID: q, Date: "2026-03-01", Response: response.TextValue("a")}},
		"2026-03-31": {{QuestionID: q, Date: "2026-03-31", Response: response.TextValue("b")}},
		// Another question's entry in range; must not count.
		"2026-03-15": {{QuestionID: uuid.New(), Date: "2026-03-15", Response: response.TextValue("c")}},
	}

	c := challenge.MonthlyChallenge{
		QuestionID: q,
		GoalType:   challenge.GoalCountEntries,
		GoalValue:  4,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-31",
	}

	prog := challenge.ComputeProgress(c, all, false)
	if prog.Current != 2 {
		t.Errorf("Current = %v, want 2 (range bounds inclusive)", prog.Current)
	}
	if prog.Percent != 50 {
		t.Errorf("Percent = %d, want 50", prog.Percent)
	}
}
