// Package sheet decodes published-spreadsheet CSV exports. The exports are
// hand-maintained, so the decoder is deliberately permissive: quoted fields
// may contain commas, quote characters are stripped, every field is trimmed,
// and rows that do not line up with the header are dropped silently.
package sheet

import "strings"

// Record is one decoded data row keyed by header name. Line is the 1-based
// position among the data lines of the export, counting rows that were
// dropped; catalog row identifiers derive from it.
type Record struct {
	Line   int
	fields map[string]string
}

// Get returns the value for the first alias that has a non-empty value.
// Header names match case-sensitively, so alias chains spell out the
// variants the sheets use (e.g. "name", "Name").
func (r Record) Get(aliases ...string) string {
	for _, key := range aliases {
		if v := r.fields[key]; v != "" {
			return v
		}
	}
	return ""
}

// GetDefault is Get with a fallback for rows that leave the field blank
func (r Record) GetDefault(def string, aliases ...string) string {
	if v := r.Get(aliases...); v != "" {
		return v
	}
	return def
}

// Decode parses a CSV export into records. Rows whose field count does not
// exactly match the header count are dropped. Input with fewer than two
// lines (header only, or nothing) decodes to an empty result, not an error.
func Decode(text string) []Record {
	return decode(text, false)
}

// DecodeLoose is Decode for exports whose rows may carry extra trailing
// fields (embedded newlines in a cell push fragments onto following lines).
// A row is kept when it has at least as many fields as the header; the
// extras are ignored.
func DecodeLoose(text string) []Record {
	return decode(text, true)
}

func decode(text string, loose bool) []Record {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil
	}

	rawHeaders := strings.Split(lines[0], ",")
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var records []Record
	for i := 1; i < len(lines); i++ {
		values := parseLine(lines[i])
		if len(values) != len(headers) && !(loose && len(values) > len(headers)) {
			continue
		}
		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			fields[h] = values[j]
		}
		records = append(records, Record{Line: i, fields: fields})
	}
	return records
}

// parseLine splits one data line on commas, honoring double quotes: a comma
// inside quotes is literal content. Quote characters themselves are dropped
// and each field is trimmed.
func parseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))
	return result
}
