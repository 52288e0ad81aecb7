// Package feedback reacts to a single logged intake amount. It looks at
// nothing but that amount: no history, no goal.
package feedback

import "github.com/limbo/hydration/pkg/entity"

const (
	// Amounts below this are too small a sip to count as a proper drink.
	NeedsMoreBelow = 150
	// Amounts from this on are a full glass or more.
	GoodFrom = 250
)

var texts = map[entity.FeedbackCategory]string{
	entity.FeedbackNeedsMore: "That was just a sip. Drink more water to stay on track.",
	entity.FeedbackNeutral:   "Logged. A full glass next time will get you there faster.",
	entity.FeedbackGood:      "Good job, you're well hydrated. Keep it up!",
}

func Classify(amount int) entity.Feedback {
	category := categoryOf(amount)
	return entity.Feedback{
		Category: category,
		Text:     texts[category],
	}
}

func categoryOf(amount int) entity.FeedbackCategory {
	switch {
	case amount < NeedsMoreBelow:
		return entity.FeedbackNeedsMore
	case amount < GoodFrom:
		return entity.FeedbackNeutral
	default:
		return entity.FeedbackGood
	}
}
