// SPDX-License-Identifier: MIT

// Package matrix - compound (in-place) operations.
//
// Every compound form delegates to its value-returning counterpart and then
// adopts the result's buffer. The receiver is therefore never read and written
// inside the same kernel, which keeps self-referential calls such as
// a.MulInPlace(a) correct, and an error leaves the receiver untouched.

package matrix

// inPlace runs op against m and adopts the result on success.
func (m *Square) inPlace(op func() (*Square, error)) error {
	res, err := op()
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// AddInPlace performs m += b.
func (m *Square) AddInPlace(b *Square) error {
	return m.inPlace(func() (*Square, error) { return Add(m, b) })
}

// SubInPlace performs m -= b.
func (m *Square) SubInPlace(b *Square) error {
	return m.inPlace(func() (*Square, error) { return Sub(m, b) })
}

// MulInPlace performs m = m × b. The product is computed into a fresh buffer
// that m adopts afterwards, so m.MulInPlace(m) squares m correctly.
func (m *Square) MulInPlace(b *Square) error {
	return m.inPlace(func() (*Square, error) { return Mul(m, b) })
}

// HadamardInPlace performs the element-wise product m[i,j] *= b[i,j].
func (m *Square) HadamardInPlace(b *Square) error {
	return m.inPlace(func() (*Square, error) { return Hadamard(m, b) })
}

// ModInPlace performs the element-wise remainder m[i,j] = fmod(m[i,j], b[i,j]).
func (m *Square) ModInPlace(b *Square) error {
	return m.inPlace(func() (*Square, error) { return Mod(m, b) })
}

// ScaleInPlace performs m *= s.
func (m *Square) ScaleInPlace(s float64) error {
	return m.inPlace(func() (*Square, error) { return Scale(m, s) })
}

// DivInPlace performs m /= s; |s| < DivisionEpsilon fails with ErrDivisionByZero.
func (m *Square) DivInPlace(s float64) error {
	return m.inPlace(func() (*Square, error) { return Div(m, s) })
}

// AddScalarInPlace performs m[i,j] += s.
func (m *Square) AddScalarInPlace(s float64) error {
	return m.inPlace(func() (*Square, error) { return AddScalar(m, s) })
}

// SubScalarInPlace performs m[i,j] -= s.
func (m *Square) SubScalarInPlace(s float64) error {
	return m.inPlace(func() (*Square, error) { return SubScalar(m, s) })
}

// ModScalarInPlace performs m[i,j] = fmod(m[i,j], k).
func (m *Square) ModScalarInPlace(k int) error {
	return m.inPlace(func() (*Square, error) { return ModScalar(m, k) })
}

// Inc adds 1 to every cell (pre-increment).
func (m *Square) Inc() error { return m.AddScalarInPlace(1) }

// Dec subtracts 1 from every cell (pre-decrement).
func (m *Square) Dec() error { return m.SubScalarInPlace(1) }

// PostInc adds 1 to every cell and returns a copy of the value before the update.
func (m *Square) PostInc() (*Square, error) {
	prev := m.Clone()
	if err := m.Inc(); err != nil {
		return nil, err
	}

	return prev, nil
}

// PostDec subtracts 1 from every cell and returns a copy of the value before the update.
func (m *Square) PostDec() (*Square, error) {
	prev := m.Clone()
	if err := m.Dec(); err != nil {
		return nil, err
	}

	return prev, nil
}
