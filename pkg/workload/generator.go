package workload

import (
	"github.com/pagesim/pagesim/pkg/random"
)

// Page identifies a page in a simulated access sequence. Pages carry
// no semantics beyond equality; the numeric value only serves to tell
// them apart.
type Page uint32

// NewNonLocal generates a workload without any locality: every access
// references a page drawn uniformly from [0, pageCount).
func NewNonLocal(generator random.SingleThreadedGenerator, length, pageCount int) []Page {
	pages := make([]Page, 0, length)
	for i := 0; i < length; i++ {
		pages = append(pages, Page(generator.IntN(pageCount)))
	}
	return pages
}

// NewEightyTwenty generates a workload following the 80-20 rule: about
// 80% of accesses reference one of the first hotPageCount pages, while
// the remainder are spread uniformly over the rest of [0, pageCount).
func NewEightyTwenty(generator random.SingleThreadedGenerator, length, hotPageCount, pageCount int) []Page {
	pages := make([]Page, 0, length)
	for i := 0; i < length; i++ {
		if generator.Float64() < 0.8 {
			pages = append(pages, Page(generator.IntN(hotPageCount)))
		} else {
			pages = append(pages, Page(hotPageCount+generator.IntN(pageCount-hotPageCount)))
		}
	}
	return pages
}

// NewRepeatingScan generates a workload that sweeps through pages
// 0..scanLength-1 in ascending order and replays that scan the given
// number of times. Scans defeat policies that favor recency, as each
// page recurs only after every other page has been accessed.
func NewRepeatingScan(scanLength, repetitions int) []Page {
	pages := make([]Page, 0, scanLength*repetitions)
	for i := 0; i < repetitions; i++ {
		for page := 0; page < scanLength; page++ {
			pages = append(pages, Page(page))
		}
	}
	return pages
}
