// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"testing"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_constant01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constant01")

	mdl, err := New("constant")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true), nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ", 1e-15, mdl.Mu(nil), 0.6)
	prms := mdl.GetPrms(false)
	chk.Float64(tst, "μ(prms)", 1e-15, prms.Find("mu").V, 0.6)

	err = mdl.Init(dbf.Params{&dbf.P{N: "mu", V: -1}}, nil)
	if err == nil {
		tst.Errorf("Init should have failed with negative mu\n")
		return
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "gamma", V: 1.4}}, nil)
	if err == nil {
		tst.Errorf("Init should have failed with unknown parameter\n")
		return
	}
	chk.Float64(tst, "μ after failed Init", 1e-15, mdl.Mu(nil), 0.6)
}

func Test_abundance01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abundance01")

	mdl := new(Abundance)
	err := mdl.Init(mdl.GetPrms(true), nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ ionised", 1e-12, mdl.Mu(nil), 0.6157519511155531)

	prms := mdl.GetPrms(true)
	prms.Find("neutral").V = 1
	err = mdl.Init(prms, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ neutral", 1e-12, mdl.Mu(nil), 1.2914718189560015)

	// pure hydrogen
	err = mdl.Init(dbf.Params{&dbf.P{N: "X", V: 1}, &dbf.P{N: "Y", V: 0}}, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ hydrogen", 1e-15, mdl.Mu(nil), 0.504)

	err = mdl.Init(dbf.Params{&dbf.P{N: "X", V: 0.8}, &dbf.P{N: "Y", V: 0.3}}, nil)
	if err == nil {
		tst.Errorf("Init should have failed with X+Y > 1\n")
		return
	}
	chk.Float64(tst, "μ after failed Init", 1e-15, mdl.Mu(nil), 0.504)
	chk.Float64(tst, "X after failed Init", 1e-15, mdl.X, 1)
	chk.Float64(tst, "Y after failed Init", 1e-15, mdl.Y, 0)
}

func Test_abundance02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abundance02")

	// re-initialising a neutral gas without 'neutral' gives an ionised gas
	mdl := new(Abundance)
	err := mdl.Init(dbf.Params{&dbf.P{N: "X", V: 1}, &dbf.P{N: "Y", V: 0}, &dbf.P{N: "neutral", V: 1}}, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ neutral hydrogen", 1e-15, mdl.Mu(nil), 1.008)

	err = mdl.Init(dbf.Params{&dbf.P{N: "X", V: 1}, &dbf.P{N: "Y", V: 0}}, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if mdl.Neutral {
		tst.Errorf("Neutral must be reset by Init\n")
		return
	}
	chk.Float64(tst, "μ ionised hydrogen", 1e-15, mdl.Mu(nil), 0.504)

	fresh := new(Abundance)
	if err = fresh.Init(mdl.GetPrms(false), nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ fresh", 1e-15, fresh.Mu(nil), mdl.Mu(nil))
}

func Test_mixture01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixture01")

	mdl, err := New("mixture")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	lay, _ := prim.NewLayout(prim.MHD, 0)
	err = mdl.Init(mdl.GetPrms(true), lay)
	if err == nil {
		tst.Errorf("Init should have failed without tracers\n")
		return
	}

	lay, _ = prim.NewLayout(prim.MHD, 1)
	err = mdl.Init(mdl.GetPrms(true), lay)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	v := lay.Alloc()
	lay.Set(v, 1, 1, 1)
	chk.Float64(tst, "μ(tr=1)", 1e-15, mdl.Mu(v), 1.3)
	lay.Set(v, 1, 1, 0)
	chk.Float64(tst, "μ(tr=0)", 1e-15, mdl.Mu(v), 0.6)
	lay.Set(v, 1, 1, 0.5)
	chk.Float64(tst, "μ(tr=½)", 1e-15, mdl.Mu(v), 0.8210526315789473)
	lay.Set(v, 1, 1, 1.5)
	chk.Float64(tst, "μ(tr>1)", 1e-15, mdl.Mu(v), 1.3)

	// failed Init keeps previous values
	err = mdl.Init(dbf.Params{&dbf.P{N: "mu1", V: 2}, &dbf.P{N: "mu2", V: 0}}, lay)
	if err == nil {
		tst.Errorf("Init should have failed with zero mu2\n")
		return
	}
	m := mdl.(*Mixture)
	chk.Float64(tst, "μ1 after failed Init", 1e-15, m.Mu1, 1.3)
	chk.Float64(tst, "μ2 after failed Init", 1e-15, m.Mu2, 0.6)
	lay.Set(v, 1, 1, 0.5)
	chk.Float64(tst, "μ(tr=½) after failed Init", 1e-15, mdl.Mu(v), 0.8210526315789473)
}

func Test_names01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("names01")

	chk.Strings(tst, "names", Names(), []string{"abundance", "constant", "mixture"})
	if _, err := New("cooling"); err == nil {
		tst.Errorf("New should have failed for unknown model\n")
		return
	}
}
