package feedback_test

import (
	"testing"

	"github.com/limbo/hydration/internal/feedback"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		Desc     string
		Amount   int
		Category entity.FeedbackCategory
	}{
		{Desc: "zero", Amount: 0, Category: entity.FeedbackNeedsMore},
		{Desc: "sip", Amount: 100, Category: entity.FeedbackNeedsMore},
		{Desc: "just below neutral", Amount: feedback.NeedsMoreBelow - 1, Category: entity.FeedbackNeedsMore},
		{Desc: "neutral lower bound", Amount: feedback.NeedsMoreBelow, Category: entity.FeedbackNeutral},
		{Desc: "just below good", Amount: feedback.GoodFrom - 1, Category: entity.FeedbackNeutral},
		{Desc: "good lower bound", Amount: feedback.GoodFrom, Category: entity.FeedbackGood},
		{Desc: "bottle", Amount: 500, Category: entity.FeedbackGood},
		{Desc: "max entry", Amount: 1000, Category: entity.FeedbackGood},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result := feedback.Classify(tc.Amount)
			assert.Equal(t, tc.Category, result.Category)
			assert.NotEmpty(t, result.Text)
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	rank := map[entity.FeedbackCategory]int{
		entity.FeedbackNeedsMore: 0,
		entity.FeedbackNeutral:   1,
		entity.FeedbackGood:      2,
	}
	prev := feedback.Classify(0)
	for amount := 1; amount <= 1000; amount++ {
		cur := feedback.Classify(amount)
		assert.GreaterOrEqual(t, rank[cur.Category], rank[prev.Category], "amount %d", amount)
		prev = cur
	}
}

func TestClassifyIsStateless(t *testing.T) {
	first := feedback.Classify(300)
	feedback.Classify(10)
	feedback.Classify(700)
	assert.Equal(t, first, feedback.Classify(300))
}
