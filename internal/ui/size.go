package ui

import "github.com/c2h5oh/datasize"

// FormatMB formats a size in MB (2^20 bytes) for display.
func FormatMB(mb float64) string {
	if mb <= 0 {
		return "0 B"
	}
	return datasize.ByteSize(mb * float64(datasize.MB)).HumanReadable()
}
