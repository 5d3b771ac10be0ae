// @focus: #state { vitals }
package components

// VitalsComponent holds the values owned by external collaborators (damage, weapon)
// The core records them, it never computes them
type VitalsComponent struct {
	Health float64
	Ammo   int
}
