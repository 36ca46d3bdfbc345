// Package resultmapper translates a legacy camera parameter bag into a
// structured capture-result snapshot.
//
// A translation pass is a pure function of four inputs: static device
// characteristics, the last-submitted capture request, the active preview
// geometry, and the legacy parameter bag. Each pass allocates its own
// snapshot; nothing is retained between passes, so a Mapper is safe to use
// from multiple pipelines as long as the inputs themselves are not being
// mutated during the call.
package resultmapper

import "github.com/camshim/go-camshim/pkg/metadata"

// Mapper converts legacy parameter state into capture-result snapshots.
type Mapper struct {
	Compat CompatConfig
}

// New returns a Mapper with the default compatibility configuration.
func New() *Mapper {
	return &Mapper{Compat: DefaultCompatConfig()}
}

// Translate runs one translation pass over the request bundle and returns
// the assembled snapshot, stamped with the capture timestamp in
// nanoseconds. It never fails for a well-formed bundle: unrecognized
// legacy values fall back to documented defaults.
func (m *Mapper) Translate(req Request, timestampNs int64) *metadata.Snapshot {
	acc := make(map[metadata.Key]any)
	for _, r := range m.rules() {
		r.run(acc, req, timestampNs)
	}
	return metadata.NewSnapshot(acc)
}

// rule is one independent mapping domain. Rules are invoked in a fixed
// order for every pass, but no rule reads another rule's output and every
// result key is owned by exactly one rule, so the order carries no
// semantics.
type rule struct {
	name string
	run  func(acc map[metadata.Key]any, req Request, timestampNs int64)
}

func (m *Mapper) rules() []rule {
	return []rule{
		{"ae", m.mapAe},
		{"awb", m.mapAwb},
		{"af", m.mapAf},
		{"lens", m.mapLens},
		{"scaler", m.mapScaler},
		{"sensor", m.mapSensor},
	}
}
