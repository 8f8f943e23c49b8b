package response

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/store"
	util "github.com/eod-app/eod-lambda/internal/utils"
)

const bucketPrefix = "responses:"

func bucketKey(day util.Day) string {
	return bucketPrefix + string(day)
}

// Ledger is the date-bucketed response store: one bucket per calendar day,
// one entry per question within a bucket.
type Ledger interface {
	// ForDate returns the day's bucket; a missing bucket is an empty slice.
	ForDate(ctx context.Context, day util.Day) ([]DailyResponse, error)
	// Save upserts by question within the day's bucket: an existing entry is
	// replaced in place (keeping its position), a new one is appended.
	Save(ctx context.Context, day util.Day, resp DailyResponse) error
	// SaveAll applies Save sequentially for each response. There is no
	// rollback: a failure leaves earlier upserts committed.
	SaveAll(ctx context.Context, day util.Day, responses []DailyResponse) error
	// All enumerates every persisted bucket, keyed by day.
	All(ctx context.Context) (map[util.Day][]DailyResponse, error)
}

type ledger struct {
	store store.Store
}

func NewLedger(s store.Store) Ledger {
	return &ledger{store: s}
}

func (l *ledger) ForDate(ctx context.Context, day util.Day) ([]DailyResponse, error) {
	raw, ok, err := l.store.Get(ctx, bucketKey(day))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []DailyResponse{}, nil
	}

	var responses []DailyResponse
	if err := json.Unmarshal([]byte(raw), &responses); err != nil {
		return nil, fmt.Errorf("corrupt response bucket %s: %w", day, err)
	}
	return responses, nil
}

func (l *ledger) Save(ctx context.Context, day util.Day, resp DailyResponse) error {
	responses, err := l.ForDate(ctx, day)
	if err != nil {
		return err
	}

	resp.Date = day
	replaced := false
	for i := range responses {
		if responses[i].QuestionID == resp.QuestionID {
			responses[i] = resp
			replaced = true
			break
		}
	}
	if !replaced {
		responses = append(responses, resp)
	}

	raw, err := json.Marshal(responses)
	if err != nil {
		return err
	}
	return l.store.Set(ctx, bucketKey(day), string(raw))
}

func (l *ledger) SaveAll(ctx context.Context, day util.Day, responses []DailyResponse) error {
	log := config.WithContext(ctx)

	for i, resp := range responses {
		if err := l.Save(ctx, day, resp); err != nil {
			log.WithError(err).Errorf("Failed to save response %d of %d for %s", i+1, len(responses), day)
			return err
		}
	}
	return nil
}

func (l *ledger) All(ctx context.Context) (map[util.Day][]DailyResponse, error) {
	keys, err := l.store.ListKeys(ctx, bucketPrefix)
	if err != nil {
		return nil, err
	}

	all := make(map[util.Day][]DailyResponse, len(keys))
	for _, key := range keys {
		day := util.Day(strings.TrimPrefix(key, bucketPrefix))
		responses, err := l.ForDate(ctx, day)
		if err != nil {
			return nil, err
		}
		all[day] = responses
	}
	return all, nil
}
