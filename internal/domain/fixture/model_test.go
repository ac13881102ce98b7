package fixture

import "testing"

func TestAllSettled(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     bool
	}{
		{name: "all finished", statuses: []string{"FINISHED", "FT"}, want: true},
		{name: "finished and postponed", statuses: []string{"AET", "POSTPONED"}, want: true},
		{name: "one live", statuses: []string{"FINISHED", "LIVE"}, want: false},
		{name: "empty status is scheduled", statuses: []string{""}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items := make([]Fixture, 0, len(tt.statuses))
			for _, status := range tt.statuses {
				items = append(items, Fixture{Status: status})
			}
			if got := AllSettled(items); got != tt.want {
				t.Fatalf("unexpected settled result: got=%v want=%v", got, tt.want)
			}
		})
	}
}
