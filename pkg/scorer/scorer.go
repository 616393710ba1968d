// Package scorer provides a vector-similarity conflict hint: rules are
// embedded as feature vectors in an HNSW index, and a tied candidate
// set is ranked by nearness to the derivation context's feature vector.
// It implements the sutra.Scorer capability and is strictly advisory;
// an empty or failed ranking means "no opinion".
package scorer

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/fogfish/hnsw"
	"github.com/fogfish/hnsw/vector"
	"github.com/hack-pad/hackpadfs"
	kvector "github.com/kshard/vector"

	"github.com/kittclouds/panini/pkg/sutra"
)

// Index is the persistent rule-embedding index. Safe for concurrent
// use.
type Index struct {
	mu    sync.RWMutex
	index *hnsw.HNSW[vector.VF32]
	fs    hackpadfs.FS
	path  string
	keys  []sutra.ID
	byID  map[sutra.ID]uint32
}

// NewIndex opens the index at path, loading a previous snapshot when
// one exists.
func NewIndex(fs hackpadfs.FS, path string) (*Index, error) {
	idx := &Index{
		fs:   fs,
		path: path,
		byID: make(map[sutra.ID]uint32),
	}
	if err := idx.load(); err != nil {
		idx.index = hnsw.New[vector.VF32](vector.SurfaceVF32(kvector.Cosine()))
	}
	return idx, nil
}

// Train inserts or refreshes the embedding for one rule.
func (x *Index) Train(id sutra.ID, vec []float32) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.index.Size() > 0 {
		dim := len(x.index.Head().Vec)
		if len(vec) != dim {
			return fmt.Errorf("scorer: dimension mismatch: index %d, vector %d", dim, len(vec))
		}
	}
	key, ok := x.byID[id]
	if !ok {
		key = uint32(len(x.keys))
		x.keys = append(x.keys, id)
		x.byID[id] = key
	}
	x.index.Insert(vector.VF32{Key: key, Vec: vec})
	return nil
}

// Len reports the number of trained rules.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.keys)
}

// Suggest implements sutra.Scorer: candidates come back ordered by
// embedding nearness to the feature vector, nearest first. Candidates
// without a trained embedding are omitted; (nil, nil) is a valid "no
// opinion" answer.
func (x *Index) Suggest(ctx context.Context, candidates []sutra.ID, features []float32) ([]sutra.ID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.index.Size() == 0 || len(candidates) == 0 {
		return nil, nil
	}
	if dim := len(x.index.Head().Vec); len(features) != dim {
		return nil, fmt.Errorf("scorer: dimension mismatch: index %d, query %d", dim, len(features))
	}

	wanted := make(map[sutra.ID]bool, len(candidates))
	for _, id := range candidates {
		wanted[id] = true
	}

	k := x.index.Size()
	ef := k * 2
	if ef < 100 {
		ef = 100
	}
	results := x.index.Search(vector.VF32{Vec: features}, k, ef)

	var ranked []sutra.ID
	for _, r := range results {
		if int(r.Key) >= len(x.keys) {
			continue
		}
		id := x.keys[r.Key]
		if wanted[id] {
			ranked = append(ranked, id)
			delete(wanted, id)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ranked, nil
}

// snapshot is the persisted form of the index.
type snapshot struct {
	Nodes hnsw.Nodes[vector.VF32]
	Keys  []sutra.ID
}

// Save writes the index to the backing filesystem.
func (x *Index) Save() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.index == nil {
		return nil
	}
	snap := snapshot{Nodes: x.index.Nodes(), Keys: x.keys}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("scorer: encode index: %w", err)
	}
	if err := hackpadfs.WriteFullFile(x.fs, x.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("scorer: write index: %w", err)
	}
	return nil
}

func (x *Index) load() error {
	content, err := hackpadfs.ReadFile(x.fs, x.path)
	if err != nil {
		return err
	}
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(content)).Decode(&snap); err != nil {
		return fmt.Errorf("scorer: decode index: %w", err)
	}
	x.index = hnsw.FromNodes[vector.VF32](vector.SurfaceVF32(kvector.Cosine()), snap.Nodes)
	x.keys = snap.Keys
	for i, id := range snap.Keys {
		x.byID[id] = uint32(i)
	}
	return nil
}
