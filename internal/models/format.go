package models

import (
	"github.com/dustin/go-humanize"
)

// FormatEarnings renders earnings with a dollar sign and thousands separators
func FormatEarnings(earnings int) string {
	return "$" + humanize.Comma(int64(earnings))
}
