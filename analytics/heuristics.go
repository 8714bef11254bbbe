// Package analytics turns a raw sheet into the summaries the rendering
// layer draws: classified score columns, per-class groupings and a full
// per-column report with distributions, grades and correlations.
package analytics

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// FullMarkRule maps a column-name pattern (case-insensitive substring) to
// the maximum attainable score for columns matching it. A mark of 0 means
// "do not grade against a full mark" and is how total-score columns opt
// out of percentage-based grading.
type FullMarkRule struct {
	Pattern string  `json:"pattern" yaml:"pattern"`
	Mark    float64 `json:"mark" yaml:"mark"`
}

// Heuristics holds every name-based decision rule the engine applies.
// The defaults cover English and Chinese gradebook conventions; hosts in
// other locales supply their own set, typically from a YAML file.
type Heuristics struct {
	// ExcludeMarkers disqualify a column from score classification
	// (student ids, sequence numbers, ranks, person and class names).
	// ASCII markers match whole words only, so "id" hits "Student ID"
	// but not "Midterm"; markers with non-ASCII characters match as
	// plain substrings since CJK headers carry no word separators.
	ExcludeMarkers []string `json:"exclude_markers" yaml:"exclude_markers"`

	// ClassMarkers identify the class/homeroom column for grouping.
	ClassMarkers []string `json:"class_markers" yaml:"class_markers"`

	// FullMarkRules are checked in order; the first match wins. Columns
	// matching no rule fall back to DefaultFullMark.
	FullMarkRules []FullMarkRule `json:"full_mark_rules" yaml:"full_mark_rules"`

	// DefaultFullMark is the assumed maximum for unrecognized columns.
	DefaultFullMark float64 `json:"default_full_mark" yaml:"default_full_mark"`

	// UnclassifiedLabel is the group label for rows whose class cell is
	// missing or blank.
	UnclassifiedLabel string `json:"unclassified_label" yaml:"unclassified_label"`
}

// DefaultHeuristics returns rules for the common bilingual gradebook
// layout: id/rank/name columns excluded, 450 for the combined three core
// subjects, 150 per core subject, 100 otherwise, and totals ungraded.
func DefaultHeuristics() *Heuristics {
	return &Heuristics{
		ExcludeMarkers: []string{
			"id", "no.", "序号", "学号", "考号",
			"rank", "排名", "名次",
			"name", "姓名",
			"class", "班级",
		},
		ClassMarkers: []string{"class", "班级"},
		FullMarkRules: []FullMarkRule{
			{Pattern: "总分", Mark: 0},
			{Pattern: "total", Mark: 0},
			{Pattern: "语数英", Mark: 450},
			{Pattern: "语数外", Mark: 450},
			{Pattern: "语文", Mark: 150},
			{Pattern: "数学", Mark: 150},
			{Pattern: "英语", Mark: 150},
			{Pattern: "chinese", Mark: 150},
			{Pattern: "math", Mark: 150},
			{Pattern: "english", Mark: 150},
		},
		DefaultFullMark:   100,
		UnclassifiedLabel: "unclassified",
	}
}

// LoadHeuristics reads a YAML heuristics file. Fields absent from the
// file keep their default values, so a locale pack only has to override
// what differs.
func LoadHeuristics(path string) (*Heuristics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heuristics: %w", err)
	}

	h := DefaultHeuristics()
	if err := yaml.Unmarshal(data, h); err != nil {
		return nil, fmt.Errorf("parse heuristics: %w", err)
	}
	if h.UnclassifiedLabel == "" {
		h.UnclassifiedLabel = DefaultHeuristics().UnclassifiedLabel
	}
	return h, nil
}

// Excluded reports whether a column name carries identifier, rank, name
// or class semantics and therefore cannot be a score column.
func (h *Heuristics) Excluded(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range h.ExcludeMarkers {
		if matchesMarker(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// matchesMarker applies the ExcludeMarkers matching rule: whole-word
// matches for ASCII markers, substring matches otherwise.
func matchesMarker(lower, marker string) bool {
	if !isASCII(marker) {
		return strings.Contains(lower, marker)
	}
	for start := 0; ; start++ {
		idx := strings.Index(lower[start:], marker)
		if idx < 0 {
			return false
		}
		start += idx
		if wordBoundary(lower, start-1) && wordBoundary(lower, start+len(marker)) {
			return true
		}
	}
}

// wordBoundary reports whether the byte at i, if any, cannot extend an
// ASCII word. Bytes of multi-byte runes are >= 0x80 and count as
// boundaries, so a marker glued to a CJK header segment still matches.
func wordBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsClassColumn reports whether a column name denotes the class column,
// either by containing a class marker or by exactly matching "class".
func (h *Heuristics) IsClassColumn(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "class" {
		return true
	}
	for _, marker := range h.ClassMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// FullMark guesses the maximum attainable score for a column by name.
// Zero means grading against a full mark is not applicable.
func (h *Heuristics) FullMark(name string) float64 {
	lower := strings.ToLower(name)
	for _, rule := range h.FullMarkRules {
		if strings.Contains(lower, strings.ToLower(rule.Pattern)) {
			return rule.Mark
		}
	}
	return h.DefaultFullMark
}
