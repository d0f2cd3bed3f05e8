// Package codec centralizes value encoding for snapshots.
//
// Snapshot files are self-describing: the codec name is stored in the file
// header, and ByName resolves it again on read. Changing the codec of an
// existing snapshot is therefore a compatibility boundary, not a silent swap.
package codec

// Codec encodes and decodes snapshot values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name, as stored in snapshot
// headers.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
