package curve

import "github.com/lixenwraith/curvedeck/vmath"

// Batch groups same-type curves so a frame evaluates them with one formula
// and no per-curve dispatch. Members are indices into the backing slice the
// batch was classified from; the backing slice must be finalized (no append,
// no reslice-and-grow) for as long as its batches are live
type Batch struct {
	Type    Type
	Members []int
	Results []vmath.Vec2
}

// Len returns the member count
func (b *Batch) Len() int {
	return len(b.Members)
}

// Classify partitions curves into type-homogeneous batches
//
// Single pass, one fixed bucket per type. Batches are emitted in
// CanonicalOrder with empty buckets skipped, members in input order, and
// each results buffer preallocated to the member count. O(n) in curve
// count; there is no find-or-create scan over a growing batch list
func Classify(curves []Curve) []Batch {
	var buckets [typeCount][]int
	for i, c := range curves {
		if c.Type >= typeCount {
			continue
		}
		buckets[c.Type] = append(buckets[c.Type], i)
	}

	batches := make([]Batch, 0, typeCount)
	for _, typ := range CanonicalOrder {
		members := buckets[typ]
		if len(members) == 0 {
			continue
		}
		batches = append(batches, Batch{
			Type:    typ,
			Members: members,
			Results: make([]vmath.Vec2, 0, len(members)),
		})
	}
	return batches
}

// EvaluateAll re-evaluates every curve in every batch at parameter t
//
// Each results buffer is cleared then refilled in member order, so
// Results[i] always corresponds to curves[Members[i]]. Evaluation is pure:
// the call is idempotent for a fixed t, and a new t fully supersedes prior
// results
func EvaluateAll(batches []Batch, curves []Curve, t float32) {
	for bi := range batches {
		b := &batches[bi]
		b.Results = b.Results[:0]
		for _, ci := range b.Members {
			p := curves[ci].Points
			b.Results = append(b.Results, Evaluate(b.Type, t, p[0], p[1], p[2], p[3]))
		}
	}
}
