// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package directory

import (
	"strings"

	"github.com/poiesic/schoolfinder/core"
)

const (
	UnknownSchool = "Unknown School"
	UnknownCity   = "Unknown City"
	DefaultGrades = "K-12"
)

// Normalize maps one raw directory payload onto a SchoolRecord using the
// FieldSources table. It never fails; missing fields take their zero value
// or a documented placeholder.
func Normalize(raw RawSchool) core.SchoolRecord {
	m := map[string]any(raw)
	if m == nil {
		m = map[string]any{}
	}

	rec := core.SchoolRecord{
		Name:  UnknownSchool,
		City:  UnknownCity,
		Level: core.LevelK12,
	}

	if s, ok := firstString(m, "id"); ok {
		rec.ID = s
	}
	if s, ok := firstString(m, "name"); ok {
		rec.Name = s
	}
	if s, ok := firstString(m, "city"); ok {
		rec.City = s
	}
	if s, ok := firstString(m, "state"); ok {
		rec.State = s
	}
	if s, ok := firstString(m, "address"); ok {
		rec.Address = s
	}
	if s, ok := firstString(m, "phone"); ok {
		rec.Phone = s
	}
	if s, ok := firstString(m, "level"); ok {
		rec.Level = NormalizeLevel(s)
	}
	rec.Grades = normalizeGrades(m)

	rec.TestScores = normalizeScores(m)
	rec.Rating, _ = firstFloat(m, "rating")
	rec.Rank, _ = firstInt(m, "rank")
	rec.RankTotal, _ = firstInt(m, "rankTotal")
	rec.Enrollment, _ = firstInt(m, "enrollment")
	rec.StudentTeacherRatio, _ = firstFloat(m, "studentTeacherRatio")

	rec.IsCharter = anyTruthy(m, "isCharter")
	rec.IsPrivate = anyTruthy(m, "isPrivate")
	rec.IsMagnet = anyTruthy(m, "isMagnet")

	return rec
}

// NormalizeLevel maps a free-form level label onto a SchoolLevel.
func NormalizeLevel(label string) core.SchoolLevel {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "elem"), strings.Contains(l, "primary"):
		return core.LevelElementary
	case strings.Contains(l, "middle"), strings.Contains(l, "junior"):
		return core.LevelMiddle
	case strings.Contains(l, "high"), strings.Contains(l, "senior"):
		return core.LevelHigh
	default:
		return core.LevelK12
	}
}

func normalizeGrades(m map[string]any) string {
	low, okLow := firstString(m, "lowGrade")
	high, okHigh := firstString(m, "highGrade")
	if okLow && okHigh {
		return low + "-" + high
	}
	if g, ok := firstString(m, "grades"); ok {
		return g
	}
	return DefaultGrades
}

func normalizeScores(m map[string]any) core.TestScores {
	var ts core.TestScores
	ts.SATReading, _ = firstFloat(m, "satReading")
	ts.SATMath, _ = firstFloat(m, "satMath")
	ts.SATTotal, _ = firstFloat(m, "satTotal")
	ts.SATTestTakers, _ = firstInt(m, "satTestTakers")
	ts.StateReading, _ = firstFloat(m, "stateReading")
	ts.StateMath, _ = firstFloat(m, "stateMath")
	ts.StateScience, _ = firstFloat(m, "stateScience")
	ts.Year, _ = firstInt(m, "scoresYear")
	ts.Trend, _ = firstString(m, "scoresTrend")
	return ts
}
