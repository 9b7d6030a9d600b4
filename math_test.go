package finite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantPreservingOpsStayClean(t *testing.T) {
	c := Unchecked(-2.75)

	assert.Equal(t, -3.0, c.Floor().Raw())
	assert.Equal(t, -2.0, c.Ceil().Raw())
	assert.Equal(t, -3.0, c.Round().Raw())
	assert.Equal(t, -2.0, c.Trunc().Raw())
	assert.Equal(t, -0.75, c.Fract().Raw())
	assert.Equal(t, -1.0, c.Signum().Raw())

	// The return types above are Clean; the compiler enforces it, but make
	// the finiteness claim explicit for the extremes too.
	big := Unchecked(math.MaxFloat64)
	assert.True(t, IsFinite(big.Floor().Raw()))
	assert.True(t, IsFinite(big.Round().Raw()))
}

func TestTaintingOpsReturnDirty(t *testing.T) {
	neg := Unchecked(-4.0)

	s := neg.Sqrt()
	assert.True(t, math.IsNaN(s.Raw()), "sqrt of a negative is NaN")
	_, err := s.Sanitize()
	require.Error(t, err)

	e := Unchecked(1000.0).Exp()
	assert.True(t, math.IsInf(e.Raw(), 1), "exp overflows to +Inf")

	l := Unchecked(0.0).Log()
	assert.True(t, math.IsInf(l.Raw(), -1), "log(0) is -Inf")

	r := Unchecked(0.0).Recip()
	assert.True(t, math.IsInf(r.Raw(), 1))
}

func TestTaintingOpsWithFiniteResults(t *testing.T) {
	four := Unchecked(4.0)

	s, err := four.Sqrt().Sanitize()
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Raw())

	p, err := four.Pow(Unchecked(0.5)).Sanitize()
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Raw())

	m, err := four.MulAdd(Unchecked(2.0), Unchecked(1.0)).Sanitize()
	require.NoError(t, err)
	assert.Equal(t, 9.0, m.Raw())
}

func TestDirtyExtendedOpsPropagate(t *testing.T) {
	nan := New(math.NaN())
	assert.True(t, math.IsNaN(nan.Floor().Raw()))
	assert.True(t, math.IsNaN(nan.Signum().Raw()))
	assert.True(t, math.IsNaN(nan.Sqrt().Raw()))

	inf := New(math.Inf(1))
	assert.True(t, math.IsInf(inf.Ceil().Raw(), 1))
	assert.Equal(t, 1.0, inf.Signum().Raw())
	assert.Equal(t, 0.0, inf.Recip().Raw())
}

func TestSignumPreservesZeroSign(t *testing.T) {
	pos := Unchecked(0.0).Signum().Raw()
	neg := Unchecked(math.Copysign(0, -1)).Signum().Raw()

	assert.Equal(t, 1.0, math.Copysign(1, pos))
	assert.Equal(t, -1.0, math.Copysign(1, neg))
}

func TestExtendedOpsFloat32(t *testing.T) {
	c := Unchecked(float32(2.5))
	assert.Equal(t, float32(2), c.Floor().Raw())
	assert.Equal(t, float32(0.5), c.Fract().Raw())

	// float32 overflow through a tainting op.
	big := Unchecked(float32(math.MaxFloat32))
	sq := big.Mul(big)
	assert.True(t, math.IsInf(float64(sq.Raw()), 1))
}
