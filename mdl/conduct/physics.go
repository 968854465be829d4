// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"sort"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/cpmech/gosl/chk"
)

// Physics computes the perpendicular coefficient for a physics module
type Physics interface {
	Kperp(kpar float64) float64 // Kperp returns κ⊥ given κ∥ (code units)
}

// Mhd conducts heat along magnetic field lines only
type Mhd struct{}

// Kperp returns zero
func (o Mhd) Kperp(kpar float64) float64 { return 0 }

// Hd has no magnetic field; conduction is isotropic
type Hd struct{}

// Kperp returns κ∥
func (o Hd) Kperp(kpar float64) float64 { return kpar }

// NewPhysics returns the physics module strategy
func NewPhysics(name string) (phys Physics, err error) {
	allocator, ok := physics[name]
	if !ok {
		return nil, chk.Err("physics module %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// PhysicsNames returns the names of all physics modules
func PhysicsNames() (names []string) {
	for name := range physics {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// physics holds all available physics modules
var physics = map[string]func() Physics{
	prim.MHD: func() Physics { return Mhd{} },
	prim.HD:  func() Physics { return Hd{} },
}
