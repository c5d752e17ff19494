package components

import "github.com/yohamta/donburi"

// SideData records which screen edge a paddle defends. It also selects the
// paddle's key bindings.
type SideData struct {
	Left bool
}

var Side = donburi.NewComponentType[SideData]()
