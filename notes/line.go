package notes

// Kind tells what role a line plays in the printed output.
type Kind uint8

const (
	KindBanner Kind = iota // section or subsection banner
	KindNote               // explanatory text
	KindRule               // closing rule of a section
)

// String implements the stringer interface, returning the kind name.
func (k Kind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	case KindNote:
		return "note"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// Line is one printed line together with its position in the table.
type Line struct {
	Section    string
	Subsection string // empty for lines outside a subsection
	Ordinal    int    // position within Section, starting at 0
	Kind       Kind
	Text       string
}

// Section is a topic grouping of notes. Subsections are printed after the
// section's own notes and before its closing rule.
type Section struct {
	Label       string
	Banner      string
	Notes       []string
	Subsections []Section
	Closed      bool // print Rule after the last line
}

// Table is the ordered list of sections.
type Table []Section

// Rule closes a section.
const Rule = "***********************************"

// Lines flattens the table into the sequence of lines to print.
func (t Table) Lines() []Line {
	var lines []Line
	for _, s := range t {
		ordinal := 0
		add := func(sub string, kind Kind, text string) {
			lines = append(lines, Line{
				Section:    s.Label,
				Subsection: sub,
				Ordinal:    ordinal,
				Kind:       kind,
				Text:       text,
			})
			ordinal++
		}
		add("", KindBanner, s.Banner)
		for _, n := range s.Notes {
			add("", KindNote, n)
		}
		for _, sub := range s.Subsections {
			add(sub.Label, KindBanner, sub.Banner)
			for _, n := range sub.Notes {
				add(sub.Label, KindNote, n)
			}
		}
		if s.Closed {
			add("", KindRule, Rule)
		}
	}
	return lines
}

// Labels returns the top-level section labels in order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, s := range t {
		labels = append(labels, s.Label)
	}
	return labels
}
