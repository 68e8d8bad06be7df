package numRating_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"num_market/internal/domain/service/numRating"
)

func TestCalculateValue(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		number      string
		score       float64
		description string
		lucky       bool
	}{
		{name: "Solid tail", number: "13900008888", score: 100, description: "Solid x4 (8888)", lucky: true},
		{name: "Long solid tail", number: "13988888888", score: 100, description: "Solid x8 (88888888)", lucky: true},
		{name: "ABCABC", number: "13800123123", score: 90, description: "ABCABC (123123)", lucky: true},
		{name: "Ascending ladder", number: "13800001234", score: 85, description: "Ladder (1234)", lucky: true},
		{name: "Descending ladder", number: "13800009876", score: 85, description: "Ladder (9876)", lucky: true},
		{name: "AABB", number: "13800006688", score: 80, description: "AABB (6688)", lucky: true},
		{name: "ABAB", number: "13800006868", score: 75, description: "ABAB (6868)", lucky: true},
		{name: "AAAB", number: "13800006669", score: 70, description: "AAAB (6669)", lucky: true},
		{name: "Love 1314", number: "13800021314", score: 65, description: "Love (1314)", lucky: true},
		{name: "Love 520", number: "13800003520", score: 65, description: "Love (520)", lucky: true},
		{name: "ABC", number: "13800005789", score: 60, description: "ABC (789)", lucky: true},
		{name: "Lucky suffix", number: "13800003888", score: 50, description: "Lucky Suffix (888)", lucky: true},
		{name: "Palindrome", number: "13800001221", score: 40, description: "Palindrome (1221)", lucky: true},
		{name: "Random", number: "13812345670", score: 0, description: "Random", lucky: false},
		{name: "Empty", number: "", score: 0, description: "Random", lucky: false},
		{name: "Not a number", number: "1381234abcd", score: 0, description: "Random", lucky: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rating := numRating.CalculateValue(tc.number)

			rq.Equal(tc.score, rating.Score)
			rq.Equal(tc.description, rating.Description)
			rq.Equal(tc.lucky, rating.IsLucky)
		})
	}
}
