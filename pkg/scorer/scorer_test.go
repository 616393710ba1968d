package scorer

import (
	"context"
	"testing"

	"github.com/hack-pad/hackpadfs/mem"

	"github.com/kittclouds/panini/pkg/sutra"
)

var (
	idYan     = sutra.MustID("6.1.77")
	idGuna    = sutra.MustID("6.1.87")
	idDirgha  = sutra.MustID("6.1.101")
	idNatva   = sutra.MustID("8.4.2")
	idVrddhih = sutra.MustID("1.1.1")
)

func trained(t *testing.T) *Index {
	t.Helper()
	fs, err := mem.NewFS()
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewIndex(fs, "rules.idx")
	if err != nil {
		t.Fatal(err)
	}
	train := map[sutra.ID][]float32{
		idYan:    {1, 0, 0},
		idGuna:   {0, 1, 0},
		idDirgha: {0, 0, 1},
	}
	for id, vec := range train {
		if err := idx.Train(id, vec); err != nil {
			t.Fatal(err)
		}
	}
	return idx
}

func TestSuggestRanksByNearness(t *testing.T) {
	idx := trained(t)

	ranked, err := idx.Suggest(context.Background(),
		[]sutra.ID{idDirgha, idGuna, idYan}, []float32{0.9, 0.1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) == 0 || ranked[0] != idYan {
		t.Errorf("ranked = %v, want %v first", ranked, idYan)
	}
}

func TestSuggestFiltersToCandidates(t *testing.T) {
	idx := trained(t)

	ranked, err := idx.Suggest(context.Background(),
		[]sutra.ID{idGuna, idDirgha}, []float32{0.9, 0.4, 0})
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range ranked {
		if id == idYan {
			t.Error("non-candidate leaked into ranking")
		}
	}
	if len(ranked) == 0 || ranked[0] != idGuna {
		t.Errorf("ranked = %v, want %v first", ranked, idGuna)
	}
}

func TestSuggestEmptyIndex(t *testing.T) {
	fs, _ := mem.NewFS()
	idx, err := NewIndex(fs, "rules.idx")
	if err != nil {
		t.Fatal(err)
	}
	ranked, err := idx.Suggest(context.Background(), []sutra.ID{idVrddhih}, []float32{1, 0, 0})
	if err != nil || ranked != nil {
		t.Errorf("empty index = (%v, %v), want no opinion", ranked, err)
	}
}

func TestTrainDimensionMismatch(t *testing.T) {
	idx := trained(t)

	if err := idx.Train(idNatva, []float32{1, 0}); err == nil {
		t.Error("short vector accepted")
	}
	if _, err := idx.Suggest(context.Background(), []sutra.ID{idYan}, []float32{1}); err == nil {
		t.Error("short query accepted")
	}
}

func TestSaveAndReload(t *testing.T) {
	fs, err := mem.NewFS()
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewIndex(fs, "rules.idx")
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Train(idYan, []float32{1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := idx.Train(idGuna, []float32{0, 1, 0}); err != nil {
		t.Fatal(err)
	}
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewIndex(fs, "rules.idx")
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 2 {
		t.Fatalf("reloaded len = %d, want 2", reopened.Len())
	}
	ranked, err := reopened.Suggest(context.Background(),
		[]sutra.ID{idYan, idGuna}, []float32{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) == 0 || ranked[0] != idGuna {
		t.Errorf("reloaded ranking = %v", ranked)
	}
}

func TestSuggestCanceledContext(t *testing.T) {
	idx := trained(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := idx.Suggest(ctx, []sutra.ID{idYan}, []float32{1, 0, 0}); err == nil {
		t.Error("canceled context ignored")
	}
}
