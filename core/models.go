package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

type ID uint64

func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

type SchoolLevel string

const (
	LevelElementary SchoolLevel = "Elementary"
	LevelMiddle     SchoolLevel = "Middle"
	LevelHigh       SchoolLevel = "High"
	LevelK12        SchoolLevel = "K-12"
)

type TestScores struct {
	SATReading    float64 `json:"satReading,omitempty"`
	SATMath       float64 `json:"satMath,omitempty"`
	SATTotal      float64 `json:"satTotal,omitempty"`
	SATTestTakers int     `json:"satTestTakers,omitempty"`
	StateReading  float64 `json:"stateReading,omitempty"`
	StateMath     float64 `json:"stateMath,omitempty"`
	StateScience  float64 `json:"stateScience,omitempty"`
	Year          int     `json:"year,omitempty"`
	Trend         string  `json:"trend,omitempty"`
}

// HasScores reports whether the directory supplied either an SAT total or a
// state reading score.
func (t TestScores) HasScores() bool {
	return t.SATTotal > 0 || t.StateReading > 0
}

type SchoolRecord struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	City                string      `json:"city"`
	State               string      `json:"state"`
	Address             string      `json:"address,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	Level               SchoolLevel `json:"level"`
	Grades              string      `json:"grades,omitempty"`
	TestScores          TestScores  `json:"testScores"`
	Rating              float64     `json:"rating"`
	Rank                int         `json:"rank"`
	RankTotal           int         `json:"rankTotal"`
	Enrollment          int         `json:"enrollment,omitempty"`
	StudentTeacherRatio float64     `json:"studentTeacherRatio,omitempty"`
	IsCharter           bool        `json:"isCharter"`
	IsPrivate           bool        `json:"isPrivate"`
	IsMagnet            bool        `json:"isMagnet"`
	SearchSource        string      `json:"searchSource,omitempty"` // strategy that produced the winning variant
	RelevanceScore      float64     `json:"relevanceScore,omitempty"`
}

// DedupKey identifies "the same school" across strategies: the normalized
// (name, city, state) triple. A trailing "school" word is dropped from the
// name so "Lincoln Elementary" and "Lincoln Elementary School" collapse.
func (r *SchoolRecord) DedupKey() string {
	name := strings.ToLower(strings.TrimSpace(r.Name))
	name = strings.TrimSpace(strings.TrimSuffix(name, " school"))
	city := strings.ToLower(strings.TrimSpace(r.City))
	state := strings.ToLower(strings.TrimSpace(r.State))
	return name + "-" + city + "-" + state
}

// TieBreak is the secondary sort key used when two records share a
// relevance score.
func (r *SchoolRecord) TieBreak() float64 {
	v := r.Rating * 10
	if r.RankTotal > 0 {
		v += float64(1000-r.Rank) / 100
	}
	return v
}

// QueryComponents is a free-text query split into the school-name part and
// optional city and state fragments. State holds the lowercase two-letter
// abbreviation.
type QueryComponents struct {
	SchoolTerms string
	City        string
	State       string
}

func (q QueryComponents) HasCity() bool {
	return q.City != ""
}

func (q QueryComponents) HasState() bool {
	return q.State != ""
}
