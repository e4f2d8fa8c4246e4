// Package facematch maps a reported face shape to the templates that suit it.
package facematch

import (
	"sort"
	"strings"
)

// Face shapes recognised by the analyzer.
const (
	Oval     = "oval"
	Round    = "round"
	Square   = "square"
	Heart    = "heart"
	Oblong   = "oblong"
	Diamond  = "diamond"
	Triangle = "triangle"
)

var shapes = []string{Oval, Round, Square, Heart, Oblong, Diamond, Triangle}

var aliases = map[string]string{
	"long":        Oblong,
	"rectangle":   Oblong,
	"rectangular": Oblong,
	"pear":        Triangle,
	"circle":      Round,
	"circular":    Round,
	"egg":         Oval,
}

// Table maps a template id to the face shapes it is suited for.
type Table map[int64][]string

// DefaultTable covers the launch catalog.
var DefaultTable = Table{
	1:  {Oval, Heart, Diamond},
	2:  {Round, Square},
	3:  {Oval, Oblong},
	4:  {Heart, Triangle, Diamond},
	5:  {Square, Oblong},
	6:  {Oval, Round, Heart},
	7:  {Diamond, Oval},
	8:  {Round, Triangle},
	9:  {Oblong, Square, Oval},
	10: {Heart, Oval},
	11: {Oval, Round, Square, Heart, Oblong, Diamond, Triangle},
	12: {Triangle, Square},
}

// Shapes returns the canonical shape names.
func Shapes() []string {
	out := make([]string, len(shapes))
	copy(out, shapes)
	return out
}

// negators rule out the shape word that follows them ("not round",
// "oval rather than round"). "t" is what remains of "isn't".
var negators = map[string]bool{"not": true, "no": true, "nor": true, "neither": true, "t": true, "than": true}

// Normalize extracts a canonical shape from free text such as
// "The face shape is Oval." The last shape mentioned wins and negated
// mentions are skipped. It returns "" when nothing matches.
func Normalize(reported string) string {
	words := strings.FieldsFunc(strings.ToLower(reported), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	for i := len(words) - 1; i >= 0; i-- {
		s := canonical(words[i])
		if s == "" || (i > 0 && negators[words[i-1]]) {
			continue
		}
		return s
	}
	return ""
}

func canonical(word string) string {
	for _, s := range shapes {
		if word == s {
			return s
		}
	}
	return aliases[word]
}

// TemplateIDs returns the ids of templates suited for shape, in ascending order.
func (t Table) TemplateIDs(shape string) []int64 {
	var ids []int64
	for id, suited := range t {
		for _, s := range suited {
			if s == shape {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Matches reports whether the template is suited for shape.
func (t Table) Matches(templateID int64, shape string) bool {
	for _, s := range t[templateID] {
		if s == shape {
			return true
		}
	}
	return false
}
