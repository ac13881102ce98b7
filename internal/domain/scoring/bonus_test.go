package scoring

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
)

func TestCalculateBonus(t *testing.T) {
	awards := DefaultRules().BonusAwards

	tests := []struct {
		name          string
		contributions []Contribution
		want          map[string]int
	}{
		{
			name: "tie at rank two follows player id",
			contributions: []Contribution{
				{PlayerID: "p1", Score: 12},
				{PlayerID: "p2", Score: 9},
				{PlayerID: "p3", Score: 9},
			},
			want: map[string]int{"p1": 3, "p2": 2, "p3": 1},
		},
		{
			name: "tie break ignores input order",
			contributions: []Contribution{
				{PlayerID: "p3", Score: 9},
				{PlayerID: "p2", Score: 9},
				{PlayerID: "p1", Score: 12},
			},
			want: map[string]int{"p1": 3, "p2": 2, "p3": 1},
		},
		{
			name: "only top three",
			contributions: []Contribution{
				{PlayerID: "a", Score: 1},
				{PlayerID: "b", Score: 7},
				{PlayerID: "c", Score: 4},
				{PlayerID: "d", Score: 10},
			},
			want: map[string]int{"d": 3, "b": 2, "c": 1},
		},
		{
			name:          "fewer contributors than awards",
			contributions: []Contribution{{PlayerID: "solo", Score: -2}},
			want:          map[string]int{"solo": 3},
		},
		{
			name:          "no contributors",
			contributions: nil,
			want:          map[string]int{},
		},
		{
			name: "duplicate player ranked once",
			contributions: []Contribution{
				{PlayerID: "x", Score: 10},
				{PlayerID: "x", Score: 8},
				{PlayerID: "y", Score: 5},
			},
			want: map[string]int{"x": 3, "y": 2},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateBonus(tt.contributions, awards)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("bonus mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateBonus_DoesNotReorderInput(t *testing.T) {
	input := []Contribution{{PlayerID: "b", Score: 1}, {PlayerID: "a", Score: 5}}
	_ = CalculateBonus(input, []int{3, 2, 1})
	if input[0].PlayerID != "b" || input[1].PlayerID != "a" {
		t.Fatalf("input slice must not be reordered: %+v", input)
	}
}

func TestCalculateBonus_AtMostSixPointsToThreePlayers(t *testing.T) {
	faker := gofakeit.New(42)
	awards := DefaultRules().BonusAwards

	for i := 0; i < 300; i++ {
		count := faker.Number(0, 22)
		contributions := make([]Contribution, 0, count)
		for j := 0; j < count; j++ {
			contributions = append(contributions, Contribution{
				PlayerID: fmt.Sprintf("p-%02d", j),
				Score:    faker.Number(-5, 20),
			})
		}

		got := CalculateBonus(contributions, awards)
		total := 0
		for _, points := range got {
			total += points
		}
		if total > 6 {
			t.Fatalf("bonus total exceeds 6: got=%d", total)
		}
		if len(got) > 3 {
			t.Fatalf("bonus awarded to more than 3 players: got=%d", len(got))
		}
		if count >= 3 && total != 6 {
			t.Fatalf("expected full bonus with %d contributors, got=%d", count, total)
		}
	}
}
