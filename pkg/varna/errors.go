package varna

import "errors"

// ErrMalformedInput marks input containing symbols outside the canonical
// table. Engines reject such input before attempting any rule.
var ErrMalformedInput = errors.New("symbol outside canonical phoneme table")
