package okada

import (
	"fmt"

	"github.com/notargets/godisloc/utils"
)

// ElasticConstants describes the homogeneous isotropic half-space.
type ElasticConstants struct {
	Mu float64 // shear modulus, stress units
	Nu float64 // Poisson ratio, 0 < Nu < 0.5
}

func (ec ElasticConstants) Validate() (err error) {
	switch {
	case !utils.IsFinite(ec.Mu, ec.Nu):
		err = fmt.Errorf("mu = %v, nu = %v: %w", ec.Mu, ec.Nu, ErrNonFinite)
	case ec.Mu <= 0:
		err = fmt.Errorf("shear modulus must be positive, have %v: %w", ec.Mu, ErrElasticConstants)
	case ec.Nu <= 0 || ec.Nu >= 0.5:
		// Nu = 0.5 makes lambda infinite; the incompressible limit is not supported
		err = fmt.Errorf("poisson ratio must lie in (0, 0.5), have %v: %w", ec.Nu, ErrElasticConstants)
	}
	return
}

// Lambda is Lamé's first parameter.
func (ec ElasticConstants) Lambda() float64 {
	return 2 * ec.Mu * ec.Nu / (1 - 2*ec.Nu)
}

// Alpha is the medium constant (lambda+mu)/(lambda+2mu) = 1/(2(1-nu)).
func (ec ElasticConstants) Alpha() float64 {
	lambda := ec.Lambda()
	return (lambda + ec.Mu) / (lambda + 2*ec.Mu)
}

// medium holds the alpha-dependent coefficients shared by every kernel call.
type medium struct {
	alp1, alp2, alp3, alp4, alp5 float64
}

func newMedium(alpha float64) medium {
	return medium{
		alp1: (1 - alpha) / 2,
		alp2: alpha / 2,
		alp3: (1 - alpha) / alpha,
		alp4: 1 - alpha,
		alp5: alpha,
	}
}
