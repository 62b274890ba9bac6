package types

// IndexEntry is a lightweight exercise reference in the course index. The
// JSON field names are consumed by the front end at runtime.
type IndexEntry struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	Content        string `json:"content"`
	Filename       string `json:"filename"`
	Title          string `json:"title"`
	OriginalCourse string `json:"originalCourse"`
}

// CourseIndex maps a normalized course key (accent-stripped, lowercased,
// trimmed) to its ordered exercise references. Rebuilt wholesale on every
// indexing run; the output JSON file is fully overwritten, not merged.
type CourseIndex map[string][]IndexEntry

// Courses returns the number of course keys in the index.
func (ci CourseIndex) Courses() int { return len(ci) }

// Exercises returns the total number of entries across all courses.
func (ci CourseIndex) Exercises() int {
	n := 0
	for _, entries := range ci {
		n += len(entries)
	}
	return n
}
