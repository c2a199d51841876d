package okada

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElasticConstants(t *testing.T) {
	{ // Poisson solid: lambda = mu, alpha = 2/3
		ec := ElasticConstants{Mu: 3.e10, Nu: 0.25}
		assert.NoError(t, ec.Validate())
		assert.InDelta(t, 3.e10, ec.Lambda(), 1.e-3)
		assert.InDelta(t, 2./3., ec.Alpha(), 1.e-15)
		md := newMedium(ec.Alpha())
		assert.InDelta(t, 1./6., md.alp1, 1.e-15)
		assert.InDelta(t, 1./3., md.alp2, 1.e-15)
		assert.InDelta(t, 0.5, md.alp3, 1.e-15)
	}
	{ // Alpha = 1/(2(1-nu))
		for _, nu := range []float64{0.01, 0.1, 0.3, 0.49} {
			ec := ElasticConstants{Mu: 1, Nu: nu}
			assert.InDelta(t, 1/(2*(1-nu)), ec.Alpha(), 1.e-12)
		}
	}
	{ // Rejected constants
		for _, ec := range []ElasticConstants{
			{Mu: 1, Nu: 0.5}, {Mu: 1, Nu: 0}, {Mu: 1, Nu: -0.1}, {Mu: 0, Nu: 0.25}, {Mu: -1, Nu: 0.25},
		} {
			assert.ErrorIs(t, ec.Validate(), ErrElasticConstants)
		}
		assert.ErrorIs(t, ElasticConstants{Mu: math.NaN(), Nu: 0.25}.Validate(), ErrNonFinite)
		assert.ErrorIs(t, ElasticConstants{Mu: 1, Nu: math.Inf(1)}.Validate(), ErrNonFinite)
	}
}
