// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements models for the mean molecular weight of a plasma
package gas

import (
	"sort"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines mean molecular weight models
type Model interface {
	Init(prms dbf.Params, lay *prim.Layout) error // Init initialises this structure
	GetPrms(example bool) dbf.Params              // gets (an example) of parameters
	Mu(v []float64) float64                       // Mu returns μ given the primitive state
}

// New mean molecular weight model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'gas' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
