package scoring

// Category names one line of a points breakdown.
type Category string

const (
	CategoryMinutes         Category = "minutes"
	CategoryGoals           Category = "goals"
	CategoryAssists         Category = "assists"
	CategoryCleanSheet      Category = "clean_sheet"
	CategoryGoalsConceded   Category = "goals_conceded"
	CategoryYellowCards     Category = "yellow_cards"
	CategoryRedCards        Category = "red_cards"
	CategoryPenaltiesSaved  Category = "penalties_saved"
	CategoryPenaltiesMissed Category = "penalties_missed"
)

// CategoryOrder is the presentation order of breakdown lines.
var CategoryOrder = []Category{
	CategoryMinutes,
	CategoryGoals,
	CategoryAssists,
	CategoryCleanSheet,
	CategoryGoalsConceded,
	CategoryYellowCards,
	CategoryRedCards,
	CategoryPenaltiesSaved,
	CategoryPenaltiesMissed,
}

type CategoryPoints struct {
	Category Category `json:"category"`
	Points   int      `json:"points"`
}

// Breakdown lists signed per-category contributions in CategoryOrder.
// Multiplier is recorded separately and never folded into the lines.
type Breakdown struct {
	Categories []CategoryPoints `json:"categories"`
	Multiplier float64          `json:"multiplier"`
}

// EmptyBreakdown returns a breakdown with every category at zero.
func EmptyBreakdown() Breakdown {
	lines := make([]CategoryPoints, 0, len(CategoryOrder))
	for _, category := range CategoryOrder {
		lines = append(lines, CategoryPoints{Category: category})
	}
	return Breakdown{Categories: lines, Multiplier: 1}
}

// Total is the sum of all category lines, i.e. base points.
func (b Breakdown) Total() int {
	total := 0
	for _, line := range b.Categories {
		total += line.Points
	}
	return total
}

func (b Breakdown) Points(category Category) int {
	for _, line := range b.Categories {
		if line.Category == category {
			return line.Points
		}
	}
	return 0
}

// Merge adds other's lines to b category by category. The result keeps
// CategoryOrder and b's multiplier.
func (b Breakdown) Merge(other Breakdown) Breakdown {
	out := EmptyBreakdown()
	out.Multiplier = b.Multiplier
	for i := range out.Categories {
		category := out.Categories[i].Category
		out.Categories[i].Points = b.Points(category) + other.Points(category)
	}
	return out
}

func (b Breakdown) clone() Breakdown {
	lines := make([]CategoryPoints, len(b.Categories))
	copy(lines, b.Categories)
	return Breakdown{Categories: lines, Multiplier: b.Multiplier}
}
