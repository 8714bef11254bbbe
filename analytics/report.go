package analytics

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/gradelens/gradelens/algorithms/distribution"
	"github.com/gradelens/gradelens/algorithms/ranking"
	"github.com/gradelens/gradelens/algorithms/regression"
	"github.com/gradelens/gradelens/algorithms/sampling"
	"github.com/gradelens/gradelens/sheet"
)

// ColumnReport is everything the rendering layer needs for one score
// column. Pass and Bands are nil for columns whose guessed full mark is 0
// (total-score columns), where percentage thresholds are meaningless.
type ColumnReport struct {
	Name     string  `json:"name"`
	FullMark float64 `json:"full_mark"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`

	Pass      *distribution.PassStats   `json:"pass,omitempty"`
	Bands     []distribution.Band       `json:"bands,omitempty"`
	Histogram []distribution.Bin        `json:"histogram"`
	Box       distribution.BoxPlotStats `json:"box"`

	// Grades counts the letter grade of every score's percentile within
	// this column.
	Grades map[string]int `json:"grades"`

	// Series is the column's values downsampled for display. Statistics
	// above are always computed on the full series.
	Series []float64 `json:"series"`
}

// Report is the full analysis of one sheet.
type Report struct {
	ID          string    `json:"id"`
	Sheet       string    `json:"sheet"`
	Rows        int       `json:"rows"`
	GeneratedAt time.Time `json:"generated_at"`

	Columns      []ColumnReport     `json:"columns"`
	Correlations *regression.Matrix `json:"correlations,omitempty"`

	// ClassAverages holds the mean of each score column per class when a
	// class column exists; nil otherwise.
	ClassAverages map[string]map[string]float64 `json:"class_averages,omitempty"`
}

// Analyzer assembles reports. All of its computations are pure; columns
// are independent and processed concurrently.
type Analyzer struct {
	classifier  *Classifier
	dist        *distribution.Analyzer
	grades      *ranking.GradeScale
	seriesLimit int
}

// NewAnalyzer creates an analyzer with default heuristics, distribution
// constants and grade scale.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithHeuristics(nil)
}

// NewAnalyzerWithHeuristics creates an analyzer with custom name rules.
func NewAnalyzerWithHeuristics(h *Heuristics) *Analyzer {
	return &Analyzer{
		classifier:  NewClassifierWithHeuristics(h),
		dist:        distribution.NewAnalyzer(),
		grades:      ranking.DefaultGradeScale(),
		seriesLimit: sampling.DefaultLimit,
	}
}

// SetDistributionConfig replaces the distribution constants.
func (a *Analyzer) SetDistributionConfig(cfg distribution.Config) {
	a.dist = distribution.NewAnalyzerWithConfig(cfg)
}

// SetGradeScale replaces the percentile-to-grade mapping.
func (a *Analyzer) SetGradeScale(scale *ranking.GradeScale) {
	a.grades = scale
}

// SetSeriesLimit changes the display downsampling budget.
func (a *Analyzer) SetSeriesLimit(limit int) {
	a.seriesLimit = limit
}

// Classifier exposes the analyzer's column classifier for callers that
// need raw NumericColumn access (the correlate/regress commands).
func (a *Analyzer) Classifier() *Classifier {
	return a.classifier
}

// Report analyzes every classified score column of the sheet. Column
// reports are computed one goroutine per column; the columns share no
// state, so the only coordination is the final join.
func (a *Analyzer) Report(s *sheet.Sheet) *Report {
	columns := a.classifier.Classify(s)

	report := &Report{
		ID:          uuid.NewString(),
		Sheet:       s.Name,
		Rows:        s.RowCount(),
		GeneratedAt: time.Now().UTC(),
		Columns:     make([]ColumnReport, len(columns)),
	}

	var wg sync.WaitGroup
	for i, col := range columns {
		wg.Add(1)
		go func(i int, col NumericColumn) {
			defer wg.Done()
			report.Columns[i] = a.columnReport(col)
		}(i, col)
	}
	wg.Wait()

	if len(columns) > 0 {
		names := make([]string, len(columns))
		series := make([][]float64, len(columns))
		for i, col := range columns {
			names[i] = col.Name
			series[i] = col.Values
		}
		report.Correlations = regression.CorrelationMatrix(names, series)
	}

	if groups := a.classifier.GroupByClass(s, columns); groups != nil {
		report.ClassAverages = classAverages(groups)
	}
	return report
}

func (a *Analyzer) columnReport(col NumericColumn) ColumnReport {
	fullMark := a.classifier.heuristics.FullMark(col.Name)

	cr := ColumnReport{
		Name:      col.Name,
		FullMark:  fullMark,
		Count:     len(col.Values),
		Average:   col.Average,
		Min:       col.Min,
		Max:       col.Max,
		Histogram: a.dist.Histogram(col.Values),
		Box:       a.dist.BoxPlot(col.Values),
		Grades:    make(map[string]int),
		Series:    sampling.Downsample(col.Values, a.seriesLimit),
	}

	if pass, ok := a.dist.PassStats(col.Values, fullMark); ok {
		cr.Pass = &pass
	}
	if bands, ok := a.dist.ScoreBands(col.Values, fullMark); ok {
		cr.Bands = bands
	}

	population := ranking.Descending(col.Values)
	for _, v := range col.Values {
		grade := a.grades.FromPercentile(ranking.Rank(v, population).Percentile)
		cr.Grades[grade.Label]++
	}
	return cr
}

func classAverages(groups map[string]map[string][]float64) map[string]map[string]float64 {
	averages := make(map[string]map[string]float64, len(groups))
	for label, byColumn := range groups {
		averages[label] = make(map[string]float64, len(byColumn))
		for name, values := range byColumn {
			if len(values) > 0 {
				averages[label][name] = stat.Mean(values, nil)
			}
		}
	}
	return averages
}
