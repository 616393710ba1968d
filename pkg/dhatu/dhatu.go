// Package dhatu holds the verbal root registry: Dhātupāṭha records
// keyed by their traditional gaṇa.position id.
package dhatu

import (
	"fmt"
	"sort"
	"strings"
)

// Pada marks which set of verbal endings a root takes.
type Pada string

const (
	Parasmaipada Pada = "P"
	Atmanepada   Pada = "A"
	Ubhayapada   Pada = "U"
	PadaUnknown  Pada = ""
)

// Dhatu is one Dhātupāṭha entry.
type Dhatu struct {
	ID      string // "1.1"
	Gana    string // "bhvadi"
	Root    string // "bhū"
	Meaning string // "sattāyām"
	Pada    Pada
	SetAnit string // "S" | "A" | "V"
}

func (d Dhatu) String() string {
	return fmt.Sprintf("%s %s (%s) %q", d.ID, d.Root, d.Gana, d.Meaning)
}

// Registry is an immutable root registry. Build it once with
// NewRegistry and share it freely.
type Registry struct {
	byID   map[string]Dhatu
	byRoot map[string][]Dhatu
	order  []string
}

// NewRegistry indexes the given records. Later duplicates of an id win,
// matching loader overwrite semantics.
func NewRegistry(records []Dhatu) *Registry {
	r := &Registry{
		byID:   make(map[string]Dhatu, len(records)),
		byRoot: make(map[string][]Dhatu),
	}
	for _, d := range records {
		if _, seen := r.byID[d.ID]; !seen {
			r.order = append(r.order, d.ID)
		}
		r.byID[d.ID] = d
	}
	for _, id := range r.order {
		d := r.byID[id]
		r.byRoot[d.Root] = append(r.byRoot[d.Root], d)
	}
	return r
}

// Get returns the record for a Dhātupāṭha id.
func (r *Registry) Get(id string) (Dhatu, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// ByRoot returns all records sharing a root form.
func (r *Registry) ByRoot(root string) []Dhatu {
	return r.byRoot[root]
}

// ByGana returns all records of one gaṇa in id order.
func (r *Registry) ByGana(gana string) []Dhatu {
	var out []Dhatu
	for _, id := range r.order {
		if d := r.byID[id]; strings.EqualFold(d.Gana, gana) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every record in insertion order.
func (r *Registry) All() []Dhatu {
	out := make([]Dhatu, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len reports the number of registered roots.
func (r *Registry) Len() int { return len(r.byID) }

// Ganas returns the distinct gaṇa names, sorted.
func (r *Registry) Ganas() []string {
	seen := make(map[string]bool)
	for _, d := range r.byID {
		seen[d.Gana] = true
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Canonical returns the built-in seed set: the root that heads each of
// the ten gaṇas plus a handful of high-frequency roots.
func Canonical() []Dhatu {
	return []Dhatu{
		{ID: "1.1", Gana: "bhvadi", Root: "bhū", Meaning: "sattāyām", Pada: Parasmaipada, SetAnit: "S"},
		{ID: "1.1137", Gana: "bhvadi", Root: "gam", Meaning: "gatau", Pada: Parasmaipada, SetAnit: "A"},
		{ID: "1.1028", Gana: "bhvadi", Root: "sev", Meaning: "sevane", Pada: Atmanepada, SetAnit: "S"},
		{ID: "2.1", Gana: "adadi", Root: "ad", Meaning: "bhakṣaṇe", Pada: Parasmaipada, SetAnit: "A"},
		{ID: "2.57", Gana: "adadi", Root: "as", Meaning: "bhuvi", Pada: Parasmaipada, SetAnit: "S"},
		{ID: "3.1", Gana: "juhotyadi", Root: "hu", Meaning: "dānādanayoḥ", Pada: Parasmaipada, SetAnit: "A"},
		{ID: "4.1", Gana: "divadi", Root: "div", Meaning: "krīḍāyām", Pada: Parasmaipada, SetAnit: "S"},
		{ID: "5.1", Gana: "svadi", Root: "su", Meaning: "abhiṣave", Pada: Ubhayapada, SetAnit: "A"},
		{ID: "6.1", Gana: "tudadi", Root: "tud", Meaning: "vyathane", Pada: Ubhayapada, SetAnit: "A"},
		{ID: "7.1", Gana: "rudhadi", Root: "rudh", Meaning: "āvaraṇe", Pada: Ubhayapada, SetAnit: "A"},
		{ID: "8.1", Gana: "tanadi", Root: "tan", Meaning: "vistāre", Pada: Ubhayapada, SetAnit: "S"},
		{ID: "8.10", Gana: "tanadi", Root: "kṛ", Meaning: "karaṇe", Pada: Ubhayapada, SetAnit: "A"},
		{ID: "9.1", Gana: "kryadi", Root: "krī", Meaning: "dravyavinimaye", Pada: Ubhayapada, SetAnit: "A"},
		{ID: "10.1", Gana: "curadi", Root: "cur", Meaning: "steye", Pada: Ubhayapada, SetAnit: "S"},
		{ID: "1.1051", Gana: "bhvadi", Root: "paṭh", Meaning: "vyaktāyāṁ vāci", Pada: Parasmaipada, SetAnit: "S"},
		{ID: "1.1143", Gana: "bhvadi", Root: "dṛś", Meaning: "prekṣaṇe", Pada: Parasmaipada, SetAnit: "A"},
	}
}
