package ranking

// Grade is a discrete letter classification with a color token for the
// rendering layer.
type Grade struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// GradeCutoff binds a minimum percentile to a grade. Cutoffs are evaluated
// from the highest percentile down; the first one satisfied wins.
type GradeCutoff struct {
	Percentile float64 `json:"percentile" yaml:"percentile"`
	Label      string  `json:"label" yaml:"label"`
	Color      string  `json:"color" yaml:"color"`
}

// DefaultGradeCutoffs returns the standard eight-band scale. The bottom
// band has no cutoff entry; anything below the last threshold falls
// through to the scale's floor grade.
func DefaultGradeCutoffs() []GradeCutoff {
	return []GradeCutoff{
		{Percentile: 0.95, Label: "A+", Color: "#1b5e20"},
		{Percentile: 0.85, Label: "A", Color: "#2e7d32"},
		{Percentile: 0.70, Label: "A-", Color: "#558b2f"},
		{Percentile: 0.50, Label: "B+", Color: "#9e9d24"},
		{Percentile: 0.30, Label: "B", Color: "#f9a825"},
		{Percentile: 0.15, Label: "B-", Color: "#ef6c00"},
		{Percentile: 0.05, Label: "C", Color: "#d84315"},
	}
}

// GradeScale maps percentiles to letter grades via ordered cutoffs.
type GradeScale struct {
	cutoffs []GradeCutoff
	floor   Grade
}

// NewGradeScale creates a scale from explicit cutoffs (ordered high to low)
// and a floor grade for percentiles below every cutoff.
func NewGradeScale(cutoffs []GradeCutoff, floor Grade) *GradeScale {
	return &GradeScale{cutoffs: cutoffs, floor: floor}
}

// DefaultGradeScale returns the A+..D scale.
func DefaultGradeScale() *GradeScale {
	return NewGradeScale(DefaultGradeCutoffs(), Grade{Label: "D", Color: "#b71c1c"})
}

// FromPercentile classifies a percentile in [0, 1]. Values outside the
// range are clamped by the cutoff walk itself: anything >= the top cutoff
// takes the top grade, anything below the last takes the floor.
func (s *GradeScale) FromPercentile(p float64) Grade {
	for _, c := range s.cutoffs {
		if p >= c.Percentile {
			return Grade{Label: c.Label, Color: c.Color}
		}
	}
	return s.floor
}

// FromRawScore estimates a grade when no ranked population is available,
// treating score/fullMark as the percentile. A non-positive full mark
// means grading is not applicable and ok is false.
func (s *GradeScale) FromRawScore(score, fullMark float64) (Grade, bool) {
	if fullMark <= 0 {
		return Grade{}, false
	}
	return s.FromPercentile(score / fullMark), true
}
