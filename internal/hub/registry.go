// FilePath: internal/hub/registry.go
package hub

import "sync"

// Registry tracks the single edge device connection slot and the set of
// dashboard connections. It owns every registered handle until that handle's
// own loop unregisters it. All operations are safe for concurrent use; one
// mutex guards both the slot and the collection so fan-out snapshots never
// observe a half-applied connect or disconnect.
type Registry struct {
	mu         sync.Mutex
	device     Conn
	dashboards []Conn
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// ConnectDevice stores c as the sole device connection. This is a
// single-device system and last connect wins: the previously registered
// handle, if any, is returned so the caller can close it.
func (r *Registry) ConnectDevice(c Conn) (evicted Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted = r.device
	r.device = c
	return evicted
}

// DisconnectDevice clears the device slot if it still holds c. The identity
// check keeps an evicted connection's teardown from clearing its replacement.
// Idempotent.
func (r *Registry) DisconnectDevice(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.device == c {
		r.device = nil
	}
}

// Device returns the current device connection, if one is registered.
func (r *Registry) Device() (Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.device, r.device != nil
}

// ConnectDashboard appends c to the dashboard collection.
func (r *Registry) ConnectDashboard(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboards = append(r.dashboards, c)
}

// DisconnectDashboard removes c by identity. Removing a handle that is not
// registered is a no-op, so a teardown path can never fail here. Idempotent.
func (r *Registry) DisconnectDashboard(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, dash := range r.dashboards {
		if dash == c {
			r.dashboards = append(r.dashboards[:i], r.dashboards[i+1:]...)
			return
		}
	}
}

// Dashboards returns a stable snapshot of the registered dashboard handles.
// Fan-out iterates the snapshot, so a concurrent connect or disconnect never
// disturbs an in-flight broadcast.
func (r *Registry) Dashboards() []Conn {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]Conn, len(r.dashboards))
	copy(snapshot, r.dashboards)
	return snapshot
}

// DashboardCount returns the number of registered dashboards.
func (r *Registry) DashboardCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dashboards)
}
