package timeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

// Fingerprints are sha256 digests over a canonical encoding of every
// input that affects a computation's output. Each field is written as
// "len:bytes" and each list section carries its element count, so the
// encoding is prefix-free: no two distinct inputs share bytes, even
// when field values contain separator characters. Day-record and
// row-assignment fingerprints are computed over disjoint inputs so the
// two caches invalidate independently.

// DaysFingerprint digests the inputs of BuildDays.
func DaysFingerprint(start, end time.Time, elements []record.Element, doneIDs []string, capacities []record.Capacity, capacityLimit float64) string {
	var b strings.Builder
	b.WriteString("days\x00")
	writeDate(&b, start)
	writeDate(&b, end)
	writeFloat(&b, capacityLimit)
	writeCount(&b, 'e', len(elements))
	for _, e := range elements {
		writeField(&b, e.ID)
		writeField(&b, e.Date)
		writeField(&b, e.Nat)
		writeField(&b, e.Status)
	}
	writeCount(&b, 'd', len(doneIDs))
	for _, id := range doneIDs {
		writeField(&b, id)
	}
	writeCount(&b, 'c', len(capacities))
	for _, c := range capacities {
		writeField(&b, c.Date)
		writeFloat(&b, c.CapEff)
		writeFloat(&b, c.BusEff)
		writeFloat(&b, c.CompEff)
		writeField(&b, c.Icon)
	}
	return digest(b.String())
}

// RowsFingerprint digests the inputs of PackStages.
func RowsFingerprint(rangeStart time.Time, totalDays int, stages []record.Stage) string {
	var b strings.Builder
	b.WriteString("rows\x00")
	writeDate(&b, rangeStart)
	fmt.Fprintf(&b, "n=%d\x00", totalDays)
	writeCount(&b, 's', len(stages))
	for _, s := range stages {
		writeField(&b, s.ID)
		writeField(&b, s.Type)
		writeField(&b, s.SDate)
		writeField(&b, s.EDate)
		writeField(&b, s.Color)
		writeCount(&b, 'm', len(s.Elements))
		for _, el := range s.Elements {
			writeField(&b, el)
		}
	}
	return digest(b.String())
}

// writeField writes a length-prefixed string, so field values that
// contain delimiter bytes cannot collide with field boundaries.
func writeField(b *strings.Builder, s string) {
	fmt.Fprintf(b, "%d:%s", len(s), s)
}

// writeCount writes a section tag and element count, so adjacent list
// sections of different lengths cannot encode to the same bytes.
func writeCount(b *strings.Builder, tag byte, n int) {
	b.WriteByte(tag)
	fmt.Fprintf(b, "%d\x00", n)
}

func writeFloat(b *strings.Builder, f float64) {
	writeField(b, strconv.FormatFloat(f, 'g', -1, 64))
}

func writeDate(b *strings.Builder, t time.Time) {
	writeField(b, t.Format("2006-01-02"))
}

func digest(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
