package sandhi

import (
	"unicode/utf8"

	"github.com/kittclouds/panini/pkg/sutra"
	"github.com/kittclouds/panini/pkg/varna"
)

// junction is the parsed vowel environment around the boundary: the
// final vowel of the left form (written or the inherent short a of a
// final consonant) and the initial vowel of the right form.
type junction struct {
	v1, v2   *varna.Phoneme
	v1start  int // byte offset where v1's written form begins
	v2end    int // byte offset just past v2's written form
	inherent bool
	script   varna.Script
	ok       bool
}

func parseJunction(ctx *sutra.Context) junction {
	b := ctx.Boundary
	if b <= 0 || b >= len(ctx.Form) {
		return junction{}
	}
	left, right := ctx.Form[:b], ctx.Form[b:]
	script := varna.DetectScript(ctx.Form)
	var j junction
	j.script = script

	if script == varna.ScriptDevanagari {
		lr, lsize := utf8.DecodeLastRuneInString(left)
		if v, ok := ctx.Table.Lookup(lr); ok && v.Vowel {
			j.v1, j.v1start = v, b-lsize
		} else if v, ok := ctx.Table.VowelOfMatra(lr); ok {
			j.v1, j.v1start = v, b-lsize
		} else if c, ok := ctx.Table.Lookup(lr); ok && !c.Vowel && lr != varna.Virama {
			inh, _ := ctx.Table.Lookup('अ')
			j.v1, j.v1start, j.inherent = inh, b, true
		} else {
			return junction{}
		}
		rr, rsize := utf8.DecodeRuneInString(right)
		v, ok := ctx.Table.Lookup(rr)
		if !ok || !v.Vowel {
			return junction{}
		}
		j.v2, j.v2end = v, b+rsize
		j.ok = true
		return j
	}

	// IAST: try the two-rune diphthongs before single vowels.
	lruneTail := func() (*varna.Phoneme, int) {
		runes := []rune(left)
		if n := len(runes); n >= 2 {
			if p, ok := ctx.Table.LookupIAST(string(runes[n-2:])); ok && p.Vowel {
				return p, b - len(string(runes[n-2:]))
			}
		}
		if n := len(runes); n >= 1 {
			s := string(runes[n-1])
			if p, ok := ctx.Table.LookupIAST(s); ok {
				if p.Vowel {
					return p, b - len(s)
				}
				// Final consonant letter carries the inherent a.
				inh, _ := ctx.Table.LookupIAST("a")
				return inh, b
			}
		}
		return nil, 0
	}
	v1, v1start := lruneTail()
	if v1 == nil {
		return junction{}
	}
	j.v1, j.v1start = v1, v1start
	j.inherent = v1start == b

	runes := []rune(right)
	if len(runes) >= 2 {
		if p, ok := ctx.Table.LookupIAST(string(runes[:2])); ok && p.Vowel {
			j.v2, j.v2end = p, b+len(string(runes[:2]))
			j.ok = true
			return j
		}
	}
	if p, ok := ctx.Table.LookupIAST(string(runes[0])); ok && p.Vowel {
		j.v2, j.v2end = p, b+len(string(runes[0]))
		j.ok = true
		return j
	}
	return junction{}
}

// precededByConsonant reports whether the rune before pos is a consonant
// letter, which decides mātrā vs independent-vowel spelling.
func precededByConsonant(ctx *sutra.Context, pos int) bool {
	if pos <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(ctx.Form[:pos])
	p, ok := ctx.Table.Lookup(r)
	return ok && !p.Vowel && r != varna.Virama && r != varna.Anusvara && r != varna.Visarga
}

// writeSingle substitutes one vowel phoneme for the whole junction span
// and consumes the boundary. Returns the rewrite position.
func writeSingle(ctx *sutra.Context, j junction, p *varna.Phoneme) int {
	var w string
	if j.script == varna.ScriptDevanagari {
		if precededByConsonant(ctx, j.v1start) || j.inherent {
			w = string(p.Matra)
		} else {
			w = string(p.Symbol)
		}
	} else {
		w = p.IAST
	}
	ctx.Form = ctx.Form[:j.v1start] + w + ctx.Form[j.v2end:]
	ctx.Boundary = -1
	return j.v1start
}

// writeCluster substitutes a vowel+semivowel sequence ("ar", "al") for
// the junction span.
func writeCluster(ctx *sutra.Context, j junction, repl string) int {
	w := repl
	if j.script == varna.ScriptDevanagari {
		cons := map[string]string{"ar": "र्", "al": "ल्"}[repl]
		if precededByConsonant(ctx, j.v1start) || j.inherent {
			w = cons // the a stays inherent in the preceding consonant
		} else {
			w = "अ" + cons
		}
	}
	ctx.Form = ctx.Form[:j.v1start] + w + ctx.Form[j.v2end:]
	ctx.Boundary = -1
	return j.v1start
}

// writeYan substitutes the semivowel for the left vowel only, keeping
// the right vowel in place.
func writeYan(ctx *sutra.Context, j junction, yan string) int {
	w := yan
	if j.script == varna.ScriptDevanagari {
		w = map[string]string{"y": "य्", "v": "व्", "r": "र्", "l": "ल्"}[yan]
	}
	ctx.Form = ctx.Form[:j.v1start] + w + ctx.Form[ctx.Boundary:]
	ctx.Boundary = -1
	return j.v1start
}

// aFamily reports whether the vowel is a or ā.
func aFamily(p *varna.Phoneme) bool {
	return p != nil && (p.IAST == "a" || p.IAST == "ā")
}

// inClass is a rank-range membership check on a resolved phoneme.
func inClass(t *varna.Table, p *varna.Phoneme, name string) bool {
	c, ok := t.ClassOf(name)
	return ok && p != nil && c.Contains(p.Rank)
}
