package common

import "fmt"

// FormatHHMMSS renders seconds as HH:MM:SS.mmm, two-digit hours allowed to
// overflow past 99, milliseconds padded to three digits (§4.4).
func FormatHHMMSS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMs := int64(seconds*1000 + 0.5)
	ms := totalMs % 1000
	totalSec := totalMs / 1000
	s := totalSec % 60
	totalMin := totalSec / 60
	m := totalMin % 60
	h := totalMin / 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
