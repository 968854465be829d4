// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements physical constants and the code unit system
package units

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// physical constants [cgs]
const (
	CONST_amu = 1.66053886e-24 // atomic mass unit [g]
	CONST_mp  = 1.67262171e-24 // proton mass [g]
	CONST_kB  = 1.3806505e-16  // Boltzmann constant [erg/K]
	CONST_au  = 1.49597892e13  // astronomical unit [cm]
)

// atomic weights
const (
	CONST_AH  = 1.008 // hydrogen
	CONST_AHe = 4.004 // helium
	CONST_AZ  = 30.0  // mean metal
)

// Units holds the code unit system and the physical constants used to convert
// between code units and cgs. All fields must be kept constant during a run.
type Units struct {

	// code units
	Density  float64 // UNIT_DENSITY [g/cm³]
	Length   float64 // UNIT_LENGTH [cm]
	Velocity float64 // UNIT_VELOCITY [cm/s]

	// constants
	Amu float64 // atomic mass unit
	Mp  float64 // proton mass
	KB  float64 // Boltzmann constant
}

// Default returns the default unit system
//  UNIT_DENSITY = mp, UNIT_LENGTH = 1 AU, UNIT_VELOCITY = 1 km/s
func Default() *Units {
	return &Units{
		Density:  CONST_mp,
		Length:   CONST_au,
		Velocity: 1e5,
		Amu:      CONST_amu,
		Mp:       CONST_mp,
		KB:       CONST_kB,
	}
}

// Unity returns a unit system where all units and constants are equal to one
func Unity() *Units {
	return &Units{1, 1, 1, 1, 1, 1}
}

// Check checks that all values are positive and finite
func (o Units) Check() (err error) {
	vals := []float64{o.Density, o.Length, o.Velocity, o.Amu, o.Mp, o.KB}
	names := []string{"density", "length", "velocity", "amu", "mp", "kB"}
	for i, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return chk.Err("units: %s must be positive and finite; %g is invalid", names[i], v)
		}
	}
	return
}

// Kelvin returns the factor converting p/ρ (code units) to temperature [K]
//  KELVIN = UNIT_VELOCITY² amu / kB
func (o Units) Kelvin() float64 {
	return o.Velocity * o.Velocity * o.Amu / o.KB
}

// CodeScale returns the factor converting a conduction coefficient from cgs to code units
//  mp μ / (UNIT_DENSITY UNIT_VELOCITY UNIT_LENGTH kB)
func (o Units) CodeScale(mu float64) float64 {
	return o.Mp * mu / (o.Density * o.Velocity * o.Length * o.KB)
}

// Pressure returns UNIT_DENSITY UNIT_VELOCITY² [dyn/cm²]
func (o Units) Pressure() float64 {
	return o.Density * o.Velocity * o.Velocity
}

// Time returns UNIT_LENGTH / UNIT_VELOCITY [s]
func (o Units) Time() float64 {
	return o.Length / o.Velocity
}
