package channel

import "github.com/aaphost/aapcore/pkg/schema"

// Table is the set of channels registered for a session, keyed by
// channel ID. It is built once at session setup and is immutable
// afterward; lookups need no locking.
type Table struct {
	byID map[uint8]*Channel
}

// NewTable builds a Table from the given channels.
func NewTable(channels ...*Channel) *Table {
	t := &Table{byID: make(map[uint8]*Channel, len(channels))}
	for _, c := range channels {
		t.byID[c.ID] = c
	}
	return t
}

// Lookup returns the channel registered for id, if any.
func (t *Table) Lookup(id uint8) (*Channel, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// All returns every registered channel, in no particular order.
func (t *Table) All() []*Channel {
	out := make([]*Channel, 0, len(t.byID))
	for _, c := range t.byID {
		out = append(out, c)
	}
	return out
}

// Discovery builds the ServiceDiscoveryResponse catalogue advertising
// every registered channel.
func (t *Table) Discovery(make_, model, year, vehicleID, huMake, huModel, buildID, version string) schema.ServiceDiscoveryResponse {
	resp := schema.ServiceDiscoveryResponse{
		Make:                    make_,
		Model:                   model,
		Year:                    year,
		VehicleID:               vehicleID,
		HeadUnitMake:            huMake,
		HeadUnitModel:           huModel,
		HeadUnitSoftwareBuild:   buildID,
		HeadUnitSoftwareVersion: version,
	}
	for _, c := range t.All() {
		resp.Services = append(resp.Services, c.Service)
	}
	return resp
}
