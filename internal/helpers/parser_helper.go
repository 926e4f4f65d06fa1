package helpers

import (
	"strconv"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages reports ceil(total/limit) and never goes below 1, so an
// empty listing still renders as a single empty page.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 1
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	if pages < 1 {
		pages = 1
	}
	return pages
}
