package readme

import "strings"

// spliceState is the position of the line scanner relative to the
// designated section and its table.
type spliceState int

const (
	// stateOutside: before the section heading (or after the table is done)
	stateOutside spliceState = iota
	// stateSeekingHeader: inside the section, looking for the table header
	stateSeekingHeader
	// stateInTable: consuming old table rows to be replaced
	stateInTable
)

// Splice replaces the skill table under the given section heading with the
// rendered table fragment. Every line outside the old table, including the
// heading itself and the first non-table line after the table, is preserved
// byte-for-byte. When the section or its table header cannot be found the
// original document is returned unchanged with found=false; callers are
// expected to warn, not fail.
func Splice(doc, section, table string) (out string, found bool) {
	lines := strings.Split(doc, "\n")
	result := make([]string, 0, len(lines))
	state := stateOutside

	for _, line := range lines {
		switch state {
		case stateOutside:
			result = append(result, line)
			if strings.TrimSpace(line) == strings.TrimSpace(section) {
				state = stateSeekingHeader
			}

		case stateSeekingHeader:
			if matchesTableHeader(line) {
				result = append(result, strings.Split(strings.TrimRight(table, "\n"), "\n")...)
				state = stateInTable
				found = true
				continue
			}
			result = append(result, line)
			if isHeading(line) {
				// The section ended without a table; resume scanning in
				// case the heading appears again further down.
				state = stateOutside
			}

		case stateInTable:
			if strings.HasPrefix(strings.TrimSpace(line), "|") {
				continue
			}
			result = append(result, line)
			state = stateOutside
		}
	}

	if !found {
		return doc, false
	}

	return strings.Join(result, "\n"), true
}

// matchesTableHeader recognises both the current 3-column header and the
// legacy 4-column variant that older documents still carry.
func matchesTableHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "|") || !strings.HasSuffix(trimmed, "|") {
		return false
	}

	cells := strings.Split(strings.Trim(trimmed, "|"), "|")
	if len(cells) != 3 && len(cells) != 4 {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(cells[0]), "Skill") &&
		strings.EqualFold(strings.TrimSpace(cells[1]), "Description") &&
		strings.EqualFold(strings.TrimSpace(cells[2]), "Author")
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
