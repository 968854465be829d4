// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/bbw7561135/thermal-wind/mdl/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Prm holds one parameter as given in the database file
type Prm struct {
	N string  `yaml:"n"` // name
	V float64 `yaml:"v"` // value
}

// Material holds material data
type Material struct {

	// input
	Name  string `yaml:"name"`  // name of material
	Type  string `yaml:"type"`  // type of material; "conduct" or "gas"
	Model string `yaml:"model"` // name of model; e.g. "spitzer", "abundance"
	Extra string `yaml:"extra"` // extra information about this material
	Prms  []Prm  `yaml:"prms"`  // all model parameters for this material

	// derived
	Conduct conduct.Model `yaml:"-"` // pointer to actual conduction model
	Gas     gas.Model     `yaml:"-"` // pointer to actual mean molecular weight model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `yaml:"materials"` // all materials

	// derived
	Conducts map[string]*Material `yaml:"-"` // subset with conduction models
	Gases    map[string]*Material `yaml:"-"` // subset with mean molecular weight models
}

// ReadMat reads all materials data from a YAML file and allocates models.
//  Note: models are initialised by Sim.Build because they depend on the layout and units
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = yaml.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}

	// subsets
	mdb.Conducts = make(map[string]*Material)
	mdb.Gases = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.Conducts[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if _, ok := mdb.Gases[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		switch m.Type {
		case "conduct":
			m.Conduct, err = conduct.New(m.Model)
			if err != nil {
				return nil, err
			}
			mdb.Conducts[m.Name] = m
		case "gas":
			m.Gas, err = gas.New(m.Model)
			if err != nil {
				return nil, err
			}
			mdb.Gases[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"conduct\" and \"gas\"", m.Type)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Params returns the parameters of this material
func (o Material) Params() (prms dbf.Params) {
	for _, p := range o.Prms {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("  - name: %s\n    type: %s\n    model: %s\n    prms:\n", o.Name, o.Type, o.Model)
	for _, p := range o.Prms {
		l += io.Sf("      - {n: %s, v: %g}\n", p.N, p.V)
	}
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "materials:\n"
	for _, m := range o {
		l += m.String()
	}
	return l
}

// readFile reads a whole file; io.ReadFile panics on failure
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", fn, r)
		}
	}()
	b = io.ReadFile(fn)
	return
}
