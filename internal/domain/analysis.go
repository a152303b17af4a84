package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CountEntry is one key with its occurrence count.
type CountEntry struct {
	Key   string
	Count int
}

// Counts is an ordered sequence of key/count pairs. It marshals to a
// JSON object whose members appear in slice order and unmarshals
// preserving document order, so sorted statistics survive a round trip
// through a file. Plain Go maps cannot guarantee either.
type Counts []CountEntry

// Get returns the count for key, or zero when the key is absent.
func (c Counts) Get(key string) int {
	for _, e := range c {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

// Top returns the first n entries, or all entries when fewer exist.
func (c Counts) Top(n int) Counts {
	if n < 0 || n > len(c) {
		n = len(c)
	}
	return c[:n]
}

// Sum returns the total of all counts.
func (c Counts) Sum() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// MarshalJSON encodes the entries as a JSON object in slice order.
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving member order.
func (c *Counts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	var out Counts
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		out = append(out, CountEntry{Key: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// StarsSummary holds descriptive statistics over the star counts of a
// repository collection.
type StarsSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Analysis is the derived, read-only summary of a repository collection.
// Languages and Topics are ordered by descending count, CreatedDates by
// ascending year, and StarsDistribution always carries the six fixed
// buckets in StarBuckets order.
type Analysis struct {
	TotalCount        int           `json:"total_count"`
	Languages         Counts        `json:"languages"`
	Topics            Counts        `json:"topics"`
	CreatedDates      Counts        `json:"created_dates"`
	StarsDistribution Counts        `json:"stars_distribution"`
	StarsSummary      *StarsSummary `json:"stars_summary,omitempty"`
}

// StarBucket is one star-count range of the distribution histogram.
// Max is the closed upper bound; a negative Max marks the overflow bucket.
type StarBucket struct {
	Label string
	Max   int
}

// StarBuckets defines the fixed histogram ranges, in presentation order.
var StarBuckets = []StarBucket{
	{Label: "0-10", Max: 10},
	{Label: "11-50", Max: 50},
	{Label: "51-100", Max: 100},
	{Label: "101-500", Max: 500},
	{Label: "501-1000", Max: 1000},
	{Label: "1001+", Max: -1},
}

// StarBucketLabel classifies a star count into exactly one bucket.
func StarBucketLabel(stars int) string {
	for _, b := range StarBuckets {
		if b.Max < 0 || stars <= b.Max {
			return b.Label
		}
	}
	return StarBuckets[len(StarBuckets)-1].Label
}
