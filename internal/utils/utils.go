package utils

import (
	"log"
	"sort"
)

func Must(e error) {
	if e != nil {
		log.Fatal(e)
	}
}

// SortDatesDesc orders YYYY-MM-DD keys newest first, the presentation
// order for history browsing.
func SortDatesDesc(days []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
}
