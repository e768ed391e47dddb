package gpa

import "strings"

// gpaHeaderSpellings lists the recognized spellings for a GPA column as they
// may appear in input files.
var gpaHeaderSpellings = []string{
	"gpa",
	"grade_point_average",
	"gradepointaverage",
	"grade point average",
	"grade-point-average",
}

// recognizedGPAHeaders holds the normalized forms of gpaHeaderSpellings,
// built once so lookups compare canonical forms only.
var recognizedGPAHeaders = func() map[string]struct{} {
	set := make(map[string]struct{}, len(gpaHeaderSpellings))
	for _, h := range gpaHeaderSpellings {
		set[NormalizeHeader(h)] = struct{}{}
	}
	return set
}()

// NormalizeHeader canonicalizes a column name: trims surrounding whitespace,
// lowercases, treats hyphens and underscores as spaces and collapses runs of
// whitespace to a single space.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// FindGPAColumn returns the index of the header that corresponds to GPA.
// Exact matches against the recognized spellings win over substring matches,
// and within each pass the earliest header wins. Returns false if no header
// relates to GPA at all.
func FindGPAColumn(headers []string) (int, bool) {
	// direct match after normalization
	for i, name := range headers {
		if _, ok := recognizedGPAHeaders[NormalizeHeader(name)]; ok {
			return i, true
		}
	}

	// fallback: any header containing "gpa" after normalization
	for i, name := range headers {
		if strings.Contains(NormalizeHeader(name), "gpa") {
			return i, true
		}
	}

	return 0, false
}
