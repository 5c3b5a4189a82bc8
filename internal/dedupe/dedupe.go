package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent generation requests. Only one narration job runs for a given
// key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// NarrationGroup deduplicates AI narration requests keyed by the hash of
// the model, style, arena, combatants and combat log (see keys.NarrationKey).
var NarrationGroup singleflight.Group
