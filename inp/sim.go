// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of run definitions and models
package inp

import (
	"os"
	"path/filepath"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/bbw7561135/thermal-wind/mdl/gas"
	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/bbw7561135/thermal-wind/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Setup holds the [Setup] section
type Setup struct {
	Physics  string // physics module; "mhd" or "hd"
	Ntracers int    // number of passive tracers
	Conduct  string // conduction model, or conduction material if MatFile is given
	Gas      string // gas model, or gas material if MatFile is given
	MatFile  string // optional YAML materials file; relative to the directory of the ini file
}

// Sim holds the run definitions
type Sim struct {

	// input
	Setup   Setup        // [Setup]
	Units   *units.Units // [Units]
	Params  dbf.Params   // [Parameters] run-time parameters
	GasPrms dbf.Params   // [Gas] parameters of gas model; used without MatFile

	// derived
	Dir   string        // directory of ini file
	Key   string        // filename key; e.g. corona.ini => corona
	Mats  *MatDb        // materials; nil without MatFile
	Lay   *prim.Layout  // layout of primitive variables
	Env   *conduct.Env  // collaborators of conduction model
	Model conduct.Model // conduction model ready for use
}

// ReadSim reads run definitions from a pluto.ini-like file
func ReadSim(fnpath string) (o *Sim, err error) {

	// load file
	f, err := ini.Load(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("cannot read definitions file %q:\n%v", fnpath, err)
	}

	// new sim
	o = new(Sim)
	o.Dir = filepath.Dir(fnpath)
	o.Key = io.FnKey(filepath.Base(fnpath))

	// setup
	sec := f.Section("Setup")
	o.Setup = Setup{
		Physics:  sec.Key("physics").MustString(prim.MHD),
		Ntracers: sec.Key("ntracers").MustInt(0),
		Conduct:  sec.Key("conduct").MustString("spitzer"),
		Gas:      sec.Key("gas").MustString("abundance"),
		MatFile:  sec.Key("matfile").String(),
	}

	// units
	def := units.Default()
	sec = f.Section("Units")
	o.Units = &units.Units{
		Density:  sec.Key("density").MustFloat64(def.Density),
		Length:   sec.Key("length").MustFloat64(def.Length),
		Velocity: sec.Key("velocity").MustFloat64(def.Velocity),
		Amu:      def.Amu,
		Mp:       def.Mp,
		KB:       def.KB,
	}
	if err = o.Units.Check(); err != nil {
		return nil, err
	}

	// parameters
	if o.Params, err = readParams(f, "Parameters"); err != nil {
		return nil, err
	}
	if o.GasPrms, err = readParams(f, "Gas"); err != nil {
		return nil, err
	}

	// materials
	if o.Setup.MatFile != "" {
		o.Mats, err = ReadMat(o.Dir, o.Setup.MatFile)
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"file":     fnpath,
		"physics":  o.Setup.Physics,
		"ntracers": o.Setup.Ntracers,
		"conduct":  o.Setup.Conduct,
		"gas":      o.Setup.Gas,
		"matfile":  o.Setup.MatFile,
	}).Debug("definitions loaded")
	return
}

// Build allocates and initialises layout, gas and conduction models
func (o *Sim) Build() (err error) {

	// layout
	o.Lay, err = prim.NewLayout(o.Setup.Physics, o.Setup.Ntracers)
	if err != nil {
		return
	}

	// models and parameters
	var g gas.Model
	var mdl conduct.Model
	var gprms, cprms dbf.Params
	if o.Mats == nil {
		if g, err = gas.New(o.Setup.Gas); err != nil {
			return
		}
		if mdl, err = conduct.New(o.Setup.Conduct); err != nil {
			return
		}
		gprms = o.GasPrms
	} else {
		gm, ok := o.Mats.Gases[o.Setup.Gas]
		if !ok {
			return chk.Err("cannot find gas material named %q in %q", o.Setup.Gas, o.Setup.MatFile)
		}
		cm, ok := o.Mats.Conducts[o.Setup.Conduct]
		if !ok {
			return chk.Err("cannot find conduct material named %q in %q", o.Setup.Conduct, o.Setup.MatFile)
		}
		g, mdl = gm.Gas, cm.Conduct
		gprms, cprms = gm.Params(), cm.Params()
	}
	cprms = merge(cprms, o.Params, mdl.GetPrms(true))

	// gas
	if err = g.Init(gprms, o.Lay); err != nil {
		return
	}

	// conduction
	o.Env, err = conduct.NewEnv(o.Lay, o.Units, g)
	if err != nil {
		return
	}
	if err = mdl.Init(cprms, o.Env); err != nil {
		return
	}
	o.Model = mdl

	log.WithFields(log.Fields{
		"key":    o.Key,
		"kelvin": o.Units.Kelvin(),
		"mu":     g.Mu(o.Lay.Alloc()),
		"prms":   paramsFields(cprms),
	}).Info("conduction model initialised")
	return
}

// readParams reads all keys of a section as parameters
func readParams(f *ini.File, name string) (prms dbf.Params, err error) {
	sec, err := f.GetSection(name)
	if err != nil {
		return nil, nil // section is optional
	}
	for _, key := range sec.Keys() {
		v, e := key.Float64()
		if e != nil {
			return nil, chk.Err("[%s] %s = %q is not a number", name, key.Name(), key.String())
		}
		prms = append(prms, &dbf.P{N: key.Name(), V: v})
	}
	return
}

// merge overrides or appends run-time parameters known by the model (listed in example)
func merge(prms, runtime, example dbf.Params) (res dbf.Params) {
	for _, p := range prms {
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	for _, p := range runtime {
		if example.Find(p.N) == nil {
			continue
		}
		if q := res.Find(p.N); q != nil {
			q.V = p.V
			continue
		}
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// paramsFields converts parameters to log fields
func paramsFields(prms dbf.Params) map[string]float64 {
	m := make(map[string]float64, len(prms))
	for _, p := range prms {
		m[p.N] = p.V
	}
	return m
}
