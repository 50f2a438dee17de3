package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint on the ground plane. World X maps to
// the space's X axis and world Z to its Y axis.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv grid shared by every footprint.
var Space = donburi.NewComponentType[resolv.Space]()

// InSpace reports whether the footprint is currently registered in a space.
func (o *ObjectData) InSpace() bool {
	return o.Object != nil && o.Object.Space != nil
}
