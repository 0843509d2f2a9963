package table

import "strings"

// Matches reports whether any field of the record contains term, ignoring case.
func Matches(record Record, term string) bool {
	needle := strings.ToLower(term)
	for _, value := range record {
		if strings.Contains(strings.ToLower(Text(value)), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the records matching term. An empty term returns data as is.
func Filter(data []Record, term string) []Record {
	if term == "" {
		return data
	}
	out := make([]Record, 0, len(data))
	for _, record := range data {
		if Matches(record, term) {
			out = append(out, record)
		}
	}
	return out
}
