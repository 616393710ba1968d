package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/panini/pkg/dhatu"
	"github.com/kittclouds/panini/pkg/sandhi"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New()
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAndGetSutras(t *testing.T) {
	s := newStore(t)

	records := sandhi.Records()
	require.NoError(t, s.SeedSutras(records))

	count, err := s.CountSutras()
	require.NoError(t, err)
	assert.Equal(t, len(records), count)

	row, err := s.GetSutra("1.1.1")
	require.NoError(t, err)
	require.NotNil(t, row, "1.1.1 missing")
	assert.Equal(t, "vṛddhir ādaic", row.Text)
	assert.Equal(t, "samjna", row.Kind)

	row, err = s.GetSutra("9.9.9")
	require.NoError(t, err)
	assert.Nil(t, row, "unknown id must come back nil, not an error")
}

func TestSearchSutras(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SeedSutras(sandhi.Records()))

	hits, err := s.SearchSutras("vṛddhi")
	require.NoError(t, err)
	require.NotEmpty(t, hits, "no hits for vṛddhi")

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	assert.Contains(t, ids, "1.1.1")
}

func TestListSutrasByKind(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SeedSutras(sandhi.Records()))

	vidhis, err := s.ListSutras("vidhi")
	require.NoError(t, err)
	require.NotEmpty(t, vidhis)
	for _, row := range vidhis {
		assert.Equal(t, "vidhi", row.Kind)
	}

	all, err := s.ListSutras("")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(vidhis))
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].ID, all[i].ID, "rows must come back in id order")
	}
}

func TestUpsertSutraReplaces(t *testing.T) {
	s := newStore(t)

	row := SutraRow{ID: "6.1.87", Text: "ād guṇaḥ", Kind: "vidhi", Specificity: 2}
	require.NoError(t, s.UpsertSutra(row))

	row.Description = "guṇa replaces a + simple vowel"
	require.NoError(t, s.UpsertSutra(row))

	count, err := s.CountSutras()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "upsert must replace, not duplicate")

	got, err := s.GetSutra("6.1.87")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, row.Description, got.Description)
}

func TestDhatuRoundTrip(t *testing.T) {
	s := newStore(t)

	roots := dhatu.Canonical()
	require.NoError(t, s.SeedDhatus(roots))

	count, err := s.CountDhatus()
	require.NoError(t, err)
	assert.Equal(t, len(roots), count)

	row, err := s.GetDhatu("1.1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "bhū", row.Root)

	reg, err := s.LoadRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(roots), reg.Len())

	d, ok := reg.Get("8.10")
	require.True(t, ok, "8.10 missing from reloaded registry")
	assert.Equal(t, "kṛ", d.Root)

	bhvadi, err := s.ListDhatus("bhvadi")
	require.NoError(t, err)
	require.NotEmpty(t, bhvadi)
	for _, r := range bhvadi {
		assert.Equal(t, "bhvadi", r.Gana)
	}
}
