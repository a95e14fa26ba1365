package workload

import (
	"os"

	"github.com/pagesim/pagesim/pkg/util"
	"github.com/vmihailenco/msgpack/v5"
)

// Trace is a workload captured to disk, so that later simulation runs
// can replay the exact access sequence an earlier run generated.
type Trace struct {
	Name  string `msgpack:"name"`
	Pages []Page `msgpack:"pages"`
}

// SaveTrace writes a trace to a file in msgpack encoding.
func SaveTrace(path string, trace *Trace) error {
	data, err := msgpack.Marshal(trace)
	if err != nil {
		return util.StatusWrap(err, "Failed to marshal trace")
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return util.StatusWrap(err, "Failed to write trace")
	}
	return nil
}

// LoadTrace reads back a trace previously written by SaveTrace.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to read trace")
	}
	var trace Trace
	if err := msgpack.Unmarshal(data, &trace); err != nil {
		return nil, util.StatusWrap(err, "Failed to unmarshal trace")
	}
	return &trace, nil
}
