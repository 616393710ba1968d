package varna

// Class is a named contiguous range [Lo, Hi) over the canonical ordering.
// Membership is a constant-time rank comparison.
type Class struct {
	Name string
	Lo   int
	Hi   int
}

// Contains reports whether a rank falls inside the class.
func (c Class) Contains(rank int) bool { return rank >= c.Lo && rank < c.Hi }

// Size returns the number of phonemes in the class.
func (c Class) Size() int { return c.Hi - c.Lo }

// classRanges resolves each pratyāhāra (and a few varga names) to its
// range over the canonical ordering. Resolved once at table construction.
//
// Top-level partition: "ac" (vowels), "hal" (consonants), "marks"
// (ayogavāha + virāma). Every phoneme belongs to exactly one of these.
var classRanges = map[string][2]int{
	"ac":  {0, 13}, // all vowels
	"ak":  {0, 9},  // simple vowels a ā i ī u ū ṛ ṝ ḷ
	"ik":  {2, 9},  // i ī u ū ṛ ṝ ḷ
	"ec":  {9, 13}, // e ai o au

	"hal":       {13, 46}, // all consonants
	"kavarga":   {13, 18},
	"cavarga":   {18, 23},
	"ṭavarga":   {23, 28},
	"tavarga":   {28, 33},
	"pavarga":   {33, 38},
	"antahstha": {38, 42}, // semivowels y r l v (yaṇ)
	"yaṇ":       {38, 42},
	"ūṣman":     {42, 46}, // ś ṣ s h

	"marks": {46, 49}, // anusvāra, visarga, virāma
}

// ClassNames returns the names of all resolved classes.
func (t *Table) ClassNames() []string {
	names := make([]string, 0, len(t.classes))
	for name := range t.classes {
		names = append(names, name)
	}
	return names
}

// ClassOf returns a resolved class by name.
func (t *Table) ClassOf(name string) (Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// ClassMembers returns the phonemes of a named class in canonical order.
func (t *Table) ClassMembers(name string) []Phoneme {
	c, ok := t.classes[name]
	if !ok {
		return nil
	}
	return t.phonemes[c.Lo:c.Hi]
}

// IsMember reports whether a Devanāgarī symbol belongs to a named class.
// Unknown symbols and unknown classes are simply not members.
func (t *Table) IsMember(sym rune, className string) bool {
	p, ok := t.bySymbol[sym]
	if !ok {
		return false
	}
	c, ok := t.classes[className]
	if !ok {
		return false
	}
	return c.Contains(p.Rank)
}

// IsMemberIAST is IsMember for romanized phonemes.
func (t *Table) IsMemberIAST(s, className string) bool {
	p, ok := t.byIAST[s]
	if !ok {
		return false
	}
	c, ok := t.classes[className]
	if !ok {
		return false
	}
	return c.Contains(p.Rank)
}
