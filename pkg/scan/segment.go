package scan

// Segment is a contiguous run of lines belonging to one category.
// It exists only during parsing; the header line itself is not
// part of Lines.
type Segment struct {
	Name  string
	Lines []string
}

// SplitCategories partitions the input lines into category
// segments. Each segment starts after a category header and runs
// to the next header or the end of input. Lines before the first
// header belong to no category and are discarded.
func SplitCategories(lines []string) []Segment {
	var segments []Segment
	for i := 0; i < len(lines); i++ {
		name, ok := MatchCategoryHeader(lines[i])
		if !ok {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if _, ok := MatchCategoryHeader(lines[j]); ok {
				end = j
				break
			}
		}
		segments = append(segments, Segment{
			Name:  name,
			Lines: lines[i+1 : end],
		})
		i = end - 1
	}
	return segments
}
