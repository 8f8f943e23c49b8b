package question

import "github.com/google/uuid"

// defaultQuestions is the seed set written on the first-ever read when no
// questions were persisted yet. Three active, five pre-paused.
func defaultQuestions() []Question {
	return []Question{
		{
			ID:       uuid.New(),
			Text:     "Did you drink alcohol today?",
			Type:     TypeYesNo,
			Category: "Health",
			Topic:    "Alcohol",
		},
		{
			ID:       uuid.New(),
			Text:     "How many hours did you sleep?",
			Type:     TypeNumber,
			Category: "Sleep",
			Topic:    "Sleep",
		},
		{
			ID:       uuid.New(),
			Text:     "Did you exercise today?",
			Type:     TypeYesNo,
			Category: "Exercise",
			Topic:    "Exercise",
		},
		{
			ID:       uuid.New(),
			Text:     "How many cups of water did you drink?",
			Type:     TypeNumber,
			Category: "Health",
			Topic:    "Hydration",
			Paused:   true,
		},
		{
			ID:       uuid.New(),
			Text:     "Did you meditate today?",
			Type:     TypeYesNo,
			Category: "Wellness",
			Topic:    "Meditation",
			Paused:   true,
		},
		{
			ID:       uuid.New(),
			Text:     "How many minutes of screen time did you have?",
			Type:     TypeNumber,
			Category: "Wellness",
			Topic:    "Screen Time",
			Paused:   true,
		},
		{
			ID:       uuid.New(),
			Text:     "Did you take your vitamins today?",
			Type:     TypeYesNo,
			Category: "Health",
			Topic:    "Vitamins",
			Paused:   true,
		},
		{
			ID:       uuid.New(),
			Text:     "How many minutes did you spend outdoors?",
			Type:     TypeNumber,
			Category: "Wellness",
			Topic:    "Outdoors",
			Paused:   true,
		},
	}
}
