package directory

import (
	"math"
	"strconv"
	"strings"
)

// FieldSources maps each canonical field to the ordered list of dot paths
// tried when reading a raw payload. The first path that yields a usable
// value wins. Numeric path segments index into arrays.
var FieldSources = map[string][]string{
	"id":                  {"schoolid", "schoolId", "id", "ncesId", "school_id"},
	"name":                {"schoolName", "name", "school_name"},
	"city":                {"city", "location.city", "address.city"},
	"state":               {"state", "st", "location.state", "address.state"},
	"address":             {"address.street", "street", "streetAddress", "address"},
	"phone":               {"phone", "phoneNumber", "telephone"},
	"level":               {"schoolLevel", "level", "schoolType", "type"},
	"lowGrade":            {"lowGrade", "gradeLow"},
	"highGrade":           {"highGrade", "gradeHigh"},
	"grades":              {"grades", "gradeRange"},
	"satReading":          {"testScores.satReading", "satReading"},
	"satMath":             {"testScores.satMath", "satMath"},
	"satTotal":            {"testScores.satTotal", "satTotal"},
	"satTestTakers":       {"testScores.satTestTakers", "satTestTakers"},
	"stateReading":        {"testScores.stateReading", "stateReading"},
	"stateMath":           {"testScores.stateMath", "stateMath"},
	"stateScience":        {"testScores.stateScience", "stateScience"},
	"scoresYear":          {"testScores.year", "testScoresYear"},
	"scoresTrend":         {"testScores.trend", "testScoresTrend"},
	"rating":              {"rating", "rankStars", "rankHistory.0.rankStars", "stars"},
	"rank":                {"rank", "rankHistory.0.rank"},
	"rankTotal":           {"rankOf", "rankTotal", "rankHistory.0.rankOf"},
	"enrollment":          {"enrollment", "numberOfStudents", "schoolYearlyDetails.0.numberOfStudents"},
	"studentTeacherRatio": {"studentTeacherRatio", "pupilTeacherRatio", "schoolYearlyDetails.0.pupilTeacherRatio"},
	"isCharter":           {"isCharterSchool", "isCharter", "charter"},
	"isPrivate":           {"isPrivate", "isPrivateSchool", "private"},
	"isMagnet":            {"isMagnetSchool", "isMagnet", "magnet"},
}

// lookup walks a dot path through nested maps and arrays.
func lookup(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case RawSchool:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// firstString returns the first non-blank string (or number rendered as a
// string) found along field's paths.
func firstString(raw map[string]any, field string) (string, bool) {
	for _, path := range FieldSources[field] {
		v, ok := lookup(raw, path)
		if !ok {
			continue
		}
		if s, ok := asString(v); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func firstFloat(raw map[string]any, field string) (float64, bool) {
	for _, path := range FieldSources[field] {
		v, ok := lookup(raw, path)
		if !ok {
			continue
		}
		if f, ok := asFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

func firstInt(raw map[string]any, field string) (int, bool) {
	f, ok := firstFloat(raw, field)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// anyTruthy ORs every synonym path of field.
func anyTruthy(raw map[string]any, field string) bool {
	for _, path := range FieldSources[field] {
		if v, ok := lookup(raw, path); ok && truthy(v) {
			return true
		}
	}
	return false
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "true", "1":
			return true
		}
	case float64:
		return t == 1
	case int:
		return t == 1
	}
	return false
}
