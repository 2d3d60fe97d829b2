// Package procinfo reports this process's own resident set size for
// GetEngineInfo (§4.6), using gopsutil instead of azcopy's
// /proc/meminfo-based sysinfo_linux.go, which reports system-wide available
// memory rather than the per-process figure the wire schema asks for.
package procinfo

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// RSSBytes returns the calling process's resident set size in bytes.
func RSSBytes() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, errors.Wrap(err, "looking up self process")
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, errors.Wrap(err, "reading memory info")
	}
	return mem.RSS, nil
}
