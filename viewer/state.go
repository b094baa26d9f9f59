package viewer

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// persistedState is the slice of viewer state a host with storage
// support may carry across runs. Only the two view toggles
// travel: the document, the page size and the layer visibility
// always start fresh.
type persistedState struct {
	ShowPoint bool `msgpack:"show_point"`
	ShowGrid  bool `msgpack:"show_grid"`
}

// EncodeState snapshots the persistable viewer state.
// The run loop never calls this; it exists for hosts that persist
// UI state between sessions.
func (v *Viewer) EncodeState() ([]byte, error) {
	data, err := msgpack.Marshal(persistedState{
		ShowPoint: v.showPoint,
		ShowGrid:  v.showGrid,
	})
	if err != nil {
		return nil, fmt.Errorf("encode viewer state: %w", err)
	}
	return data, nil
}

// RestoreState applies a snapshot produced by EncodeState.
// Fields missing from the snapshot keep their defaults, so
// snapshots from older versions stay loadable.
func (v *Viewer) RestoreState(data []byte) error {
	var st persistedState
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("restore viewer state: %w", err)
	}
	v.showPoint = st.ShowPoint
	v.showGrid = st.ShowGrid
	return nil
}
