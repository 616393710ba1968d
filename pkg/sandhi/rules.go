package sandhi

import (
	"strings"
	"unicode/utf8"

	"github.com/kittclouds/panini/pkg/sutra"
)

// Records returns the built-in boundary-transformation rule set as
// loader records: the governing headers and term definitions, the four
// classical vowel-junction rules, and retroflexion. Apavāda edges encode
// the priority the grammar itself declares: savarṇa-dīrgha and vṛddhi
// are explicit exceptions to the general guṇa and yaṇ rules.
func Records() []sutra.Record {
	return []sutra.Record{
		{
			ID: "1.1.1", Text: "vṛddhir ādaic", Kind: sutra.Samjna,
			Description: "ā, ai, au are termed vṛddhi (the growth grade)",
			Specificity: 1,
			Declares:    sutra.Declares{Term: "vrddhi"},
		},
		{
			ID: "1.1.2", Text: "adeṅ guṇaḥ", Kind: sutra.Samjna,
			Description: "a, e, o are termed guṇa",
			Specificity: 1,
			Declares:    sutra.Declares{Term: "guna"},
		},
		{
			ID: "1.1.3", Text: "iko guṇavṛddhī", Kind: sutra.Paribhasha,
			Description: "guṇa and vṛddhi substitutions target ik vowels",
			Specificity: 1,
		},
		{
			ID: "1.4.2", Text: "vipratiṣedhe paraṁ kāryam", Kind: sutra.Paribhasha,
			Description: "in unresolved conflict the later rule prevails",
			Specificity: 1,
		},
		{
			ID: "6.1.72", Text: "saṃhitāyām", Kind: sutra.Adhikara,
			Description: "governing header: the following rules apply in close contact",
			Specificity: 1,
			Declares:    sutra.Declares{ScopeName: "samhita", Term: "samhitayam"},
		},
		{
			ID: "6.1.84", Text: "ekaḥ pūrvaparayoḥ", Kind: sutra.Adhikara,
			Description: "governing header: one substitute for both prior and latter",
			Specificity: 1,
			Declares:    sutra.Declares{ScopeName: "ekadesha"},
		},
		{
			ID: "6.1.77", Text: "iko yaṇ aci", Kind: sutra.Vidhi,
			Description:  "ik vowel before a vowel becomes the matching semivowel",
			Scope:        []string{"samhita", "ekadesha"},
			Specificity:  2,
			Requires:     []string{"samhitayam"},
			InheritsFrom: []string{"6.1.72", "6.1.84"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate: func(ctx *sutra.Context) bool {
				j := parseJunction(ctx)
				return j.ok && !j.inherent &&
					inClass(ctx.Table, j.v1, "ik") && inClass(ctx.Table, j.v2, "ac")
			},
			Action: func(ctx *sutra.Context) int {
				j := parseJunction(ctx)
				if !j.ok {
					return -1
				}
				return writeYan(ctx, j, ctx.Table.Yan(j.v1))
			},
		},
		{
			ID: "6.1.87", Text: "ād guṇaḥ", Kind: sutra.Vidhi,
			Description:  "a/ā plus a following vowel yields the guṇa substitute",
			Scope:        []string{"samhita", "ekadesha"},
			Specificity:  2,
			Requires:     []string{"samhitayam"},
			InheritsFrom: []string{"6.1.72", "6.1.84"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate: func(ctx *sutra.Context) bool {
				j := parseJunction(ctx)
				return j.ok && aFamily(j.v1) && inClass(ctx.Table, j.v2, "ac")
			},
			Action: func(ctx *sutra.Context) int {
				j := parseJunction(ctx)
				if !j.ok {
					return -1
				}
				g := ctx.Table.Guna(j.v2)
				switch g {
				case "e", "o":
					p, _ := ctx.Table.LookupIAST(g)
					return writeSingle(ctx, j, p)
				case "ar", "al":
					return writeCluster(ctx, j, g)
				}
				return -1
			},
		},
		{
			ID: "6.1.88", Text: "vṛddhir eci", Kind: sutra.Vidhi,
			Description:  "a/ā plus an ec vowel yields the vṛddhi substitute",
			Scope:        []string{"samhita", "ekadesha"},
			Specificity:  3,
			Requires:     []string{"samhitayam"},
			Overrides:    []string{"6.1.87"},
			InheritsFrom: []string{"6.1.72", "6.1.84"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate: func(ctx *sutra.Context) bool {
				j := parseJunction(ctx)
				return j.ok && aFamily(j.v1) && inClass(ctx.Table, j.v2, "ec")
			},
			Action: func(ctx *sutra.Context) int {
				j := parseJunction(ctx)
				if !j.ok {
					return -1
				}
				p, ok := ctx.Table.LookupIAST(ctx.Table.Vrddhi(j.v2))
				if !ok {
					return -1
				}
				return writeSingle(ctx, j, p)
			},
		},
		{
			ID: "6.1.101", Text: "akaḥ savarṇe dīrghaḥ", Kind: sutra.Vidhi,
			Description:  "two similar simple vowels merge into the long vowel",
			Scope:        []string{"samhita", "ekadesha"},
			Specificity:  4,
			Requires:     []string{"samhitayam"},
			Overrides:    []string{"6.1.77", "6.1.87"},
			InheritsFrom: []string{"6.1.72", "6.1.84"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate: func(ctx *sutra.Context) bool {
				j := parseJunction(ctx)
				return j.ok && inClass(ctx.Table, j.v1, "ak") &&
					inClass(ctx.Table, j.v2, "ak") && ctx.Table.Savarna(j.v1, j.v2)
			},
			Action: func(ctx *sutra.Context) int {
				j := parseJunction(ctx)
				if !j.ok {
					return -1
				}
				d := ctx.Table.Dirgha(j.v1)
				if d == nil {
					return -1
				}
				return writeSingle(ctx, j, d)
			},
		},
		{
			ID: "8.2.1", Text: "pūrvatrāsiddham", Kind: sutra.Adhikara,
			Description: "governing header of the tripādī section",
			Specificity: 1,
			Declares:    sutra.Declares{ScopeName: "tripadi"},
		},
		{
			ID: "8.4.2", Text: "aṭkupvāṅnumvyavāye 'pi", Kind: sutra.Vidhi,
			Description:  "n becomes retroflex ṇ after r/ṛ/ṝ/ṣ despite intervening vowels, gutturals, labials, semivowels, h, anusvāra",
			Scope:        []string{"samhita", "tripadi"},
			Specificity:  3,
			Requires:     []string{"samhitayam"},
			Triggers:     []string{"n", "न"},
			InheritsFrom: []string{"6.1.72", "8.2.1"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate: func(ctx *sutra.Context) bool {
				return natvaSite(ctx.Form) >= 0
			},
			Action: func(ctx *sutra.Context) int {
				pos := natvaSite(ctx.Form)
				if pos < 0 {
					return -1
				}
				r, size := utf8.DecodeRuneInString(ctx.Form[pos:])
				repl := "ṇ"
				if r == 'न' {
					repl = "ण"
				}
				ctx.Form = ctx.Form[:pos] + repl + ctx.Form[pos+size:]
				return pos
			},
		},
	}
}

// ruleName resolves a rule id to its sūtra text for explain output.
func ruleName(g *sutra.Graph, id string) string {
	r, err := g.Lookup(id)
	if err != nil {
		return id
	}
	return strings.TrimSpace(r.Text)
}
