// Package record defines the raw boundary types the timeline core
// consumes: elements, delivery stages, daily capacity figures, and the
// active date range. Records arrive loosely typed from host storage and
// are validated here once; the rest of the core never re-checks them.
package record

import (
	"strings"
	"time"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
)

// Category represents the aggregation bucket of an element.
type Category string

const (
	CategoryActivity    Category = "activity"
	CategoryDeliverable Category = "deliverable"
	CategoryTask        Category = "task"
)

// ParseCategory maps a raw nat value to a Category. The wire spelling
// "delivrable" (sic) is what upstream producers emit.
func ParseCategory(nat string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(nat)) {
	case "activity":
		return CategoryActivity, true
	case "delivrable", "deliverable":
		return CategoryDeliverable, true
	case "task":
		return CategoryTask, true
	default:
		return "", false
	}
}

// completionStatuses is the fixed set of status keywords that mark an
// element as done.
var completionStatuses = map[string]bool{
	"done":      true,
	"finished":  true,
	"completed": true,
	"closed":    true,
}

// IsDoneStatus returns true if the raw status keyword signals completion.
func IsDoneStatus(status string) bool {
	return completionStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// Element is a dated work item (activity, deliverable, or task).
type Element struct {
	ID     string `yaml:"pre_id" json:"pre_id"`
	Date   string `yaml:"date" json:"date"`
	Nat    string `yaml:"nat" json:"nat"`
	Status string `yaml:"status" json:"status"`
}

// Valid reports whether the element carries the fields aggregation
// needs. Invalid elements are dropped, never fatal.
func (e Element) Valid() bool {
	if e.ID == "" {
		return false
	}
	if _, ok := ParseCategory(e.Nat); !ok {
		return false
	}
	_, err := time.Parse("2006-01-02", e.Date)
	return err == nil
}

// Day returns the element's parsed date. Call only after Valid.
func (e Element) Day() time.Time {
	t, _ := time.Parse("2006-01-02", e.Date)
	return t
}

// Stage is a date-ranged grouping entity rendered as a horizontal bar.
type Stage struct {
	ID       string   `yaml:"id" json:"id"`
	Type     string   `yaml:"type" json:"type"`
	SDate    string   `yaml:"sdate" json:"sdate"`
	EDate    string   `yaml:"edate" json:"edate"`
	Color    string   `yaml:"pcolor" json:"pcolor"`
	Elements []string `yaml:"elm_filtered" json:"elm_filtered"`
}

// Capacity holds daily capacity figures.
type Capacity struct {
	Date    string  `yaml:"date" json:"date"`
	CapEff  float64 `yaml:"capeff" json:"capeff"`
	BusEff  float64 `yaml:"buseff" json:"buseff"`
	CompEff float64 `yaml:"compeff" json:"compeff"`
	Icon    string  `yaml:"eicon" json:"eicon"`
}

// RangeInfo describes the active timeline range and the per-day
// capacity ceiling.
type RangeInfo struct {
	StartDate string  `yaml:"startDate" json:"startDate"`
	EndDate   string  `yaml:"endDate" json:"endDate"`
	LMax      float64 `yaml:"lmax" json:"lmax"`
}

// DateRange resolves the RangeInfo into a validated dateutil.DateRange.
func (r RangeInfo) DateRange() (*dateutil.DateRange, error) {
	return dateutil.NewDateRange(r.StartDate, r.EndDate)
}

// Dataset bundles everything the core needs for one timeline.
type Dataset struct {
	Range      RangeInfo  `yaml:"range" json:"range"`
	Elements   []Element  `yaml:"elements" json:"elements"`
	Done       []string   `yaml:"done" json:"done"`
	Stages     []Stage    `yaml:"stages" json:"stages"`
	Capacities []Capacity `yaml:"capacities" json:"capacities"`
}

// FilterElements drops malformed elements, preserving input order.
func FilterElements(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
