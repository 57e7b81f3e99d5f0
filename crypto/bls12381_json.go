package crypto

import "encoding/json"

// Wire format: every field element is its raw Montgomery-form limb array,
// unconverted -- the JSON layer is a verbatim passthrough of the in-memory
// representation, not a canonical-integer encoding.

type fpWire struct {
	Data [6]uint64 `json:"data"`
}

func (a Fp) MarshalJSON() ([]byte, error) {
	return json.Marshal(fpWire{Data: a.Raw()})
}

func (a *Fp) UnmarshalJSON(data []byte) error {
	var w fpWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = FpFromRawUnchecked(w.Data)
	return nil
}

type scalarWire struct {
	Data [4]uint64 `json:"data"`
}

func (a Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(scalarWire{Data: a.Raw()})
}

func (a *Scalar) UnmarshalJSON(data []byte) error {
	var w scalarWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = ScalarFromRawUnchecked(w.Data)
	return nil
}

type choiceWire struct {
	Data uint8 `json:"data"`
}

func (c Choice) MarshalJSON() ([]byte, error) {
	return json.Marshal(choiceWire{Data: uint8(c)})
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	var w choiceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = choiceOf(uint64(w.Data))
	return nil
}

type fp2Wire struct {
	C0 Fp `json:"c0"`
	C1 Fp `json:"c1"`
}

func (a Fp2) MarshalJSON() ([]byte, error) {
	return json.Marshal(fp2Wire{C0: a.C0, C1: a.C1})
}

func (a *Fp2) UnmarshalJSON(data []byte) error {
	var w fp2Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.C0, a.C1 = w.C0, w.C1
	return nil
}

type fp6Wire struct {
	C0 Fp2 `json:"c0"`
	C1 Fp2 `json:"c1"`
	C2 Fp2 `json:"c2"`
}

func (a Fp6) MarshalJSON() ([]byte, error) {
	return json.Marshal(fp6Wire{C0: a.C0, C1: a.C1, C2: a.C2})
}

func (a *Fp6) UnmarshalJSON(data []byte) error {
	var w fp6Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.C0, a.C1, a.C2 = w.C0, w.C1, w.C2
	return nil
}

type fp12Wire struct {
	C0 Fp6 `json:"c0"`
	C1 Fp6 `json:"c1"`
}

func (a Fp12) MarshalJSON() ([]byte, error) {
	return json.Marshal(fp12Wire{C0: a.C0, C1: a.C1})
}

func (a *Fp12) UnmarshalJSON(data []byte) error {
	var w fp12Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.C0, a.C1 = w.C0, w.C1
	return nil
}

type g1AffineWire struct {
	X        Fp     `json:"x"`
	Y        Fp     `json:"y"`
	Infinity Choice `json:"infinity"`
}

func (p G1Affine) MarshalJSON() ([]byte, error) {
	return json.Marshal(g1AffineWire{X: p.X, Y: p.Y, Infinity: p.Infinity})
}

func (p *G1Affine) UnmarshalJSON(data []byte) error {
	var w g1AffineWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.X, p.Y, p.Infinity = w.X, w.Y, w.Infinity
	return nil
}

type g2AffineWire struct {
	X        Fp2    `json:"x"`
	Y        Fp2    `json:"y"`
	Infinity Choice `json:"infinity"`
}

func (p G2Affine) MarshalJSON() ([]byte, error) {
	return json.Marshal(g2AffineWire{X: p.X, Y: p.Y, Infinity: p.Infinity})
}

func (p *G2Affine) UnmarshalJSON(data []byte) error {
	var w g2AffineWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.X, p.Y, p.Infinity = w.X, w.Y, w.Infinity
	return nil
}

type gtWire struct {
	Data Fp12 `json:"data"`
}

func (g Gt) MarshalJSON() ([]byte, error) {
	return json.Marshal(gtWire{Data: g.Data})
}

func (g *Gt) UnmarshalJSON(data []byte) error {
	var w gtWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	g.Data = w.Data
	return nil
}

type g2PreparedWire struct {
	Infinity Choice   `json:"infinity"`
	Coeffs   [][3]Fp2 `json:"coeffs"`
}

func (g G2Prepared) MarshalJSON() ([]byte, error) {
	return json.Marshal(g2PreparedWire{Infinity: g.Infinity, Coeffs: g.Coeffs[:]})
}

func (g *G2Prepared) UnmarshalJSON(data []byte) error {
	var w g2PreparedWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	g.Infinity = w.Infinity
	copy(g.Coeffs[:], w.Coeffs)
	return nil
}
