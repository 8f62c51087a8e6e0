package interval

import (
	"sort"
	"time"

	"gravitas-hq/callisto/pkg/graph"
)

// Week is the length of every bucket produced by Weekly.
const Week = 7 * 24 * time.Hour

const weekSeconds = int64(Week / time.Second)

// Bucket is one weekly interval together with the nodes whose timestamps
// fall inside it. Start is inclusive; the bucket covers [Start, Start+Week).
type Bucket struct {
	Start time.Time
	Nodes []graph.Node
}

// Weekly partitions nodes into epoch-aligned weekly buckets. Every node
// appears in exactly one bucket; buckets are disjoint and returned in
// ascending Start order. Nodes within a bucket keep their input order.
// An empty input yields an empty partition.
func Weekly(nodes []graph.Node) []Bucket {
	byWeek := make(map[int64][]graph.Node)
	for _, n := range nodes {
		idx := weekIndex(n.Timestamp)
		byWeek[idx] = append(byWeek[idx], n)
	}

	indices := make([]int64, 0, len(byWeek))
	for idx := range byWeek {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	buckets := make([]Bucket, 0, len(indices))
	for _, idx := range indices {
		buckets = append(buckets, Bucket{
			Start: time.Unix(idx*weekSeconds, 0).UTC(),
			Nodes: byWeek[idx],
		})
	}
	return buckets
}

// weekIndex floors the timestamp to a whole number of weeks since the Unix
// epoch, rounding toward negative infinity so pre-epoch timestamps bucket
// correctly.
func weekIndex(t time.Time) int64 {
	sec := t.Unix()
	idx := sec / weekSeconds
	if sec%weekSeconds < 0 {
		idx--
	}
	return idx
}
