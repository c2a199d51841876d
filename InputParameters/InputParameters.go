package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/godisloc/okada"
)

// Parameters obtained from the YAML run file
type InputParametersOkada struct {
	Title        string      `json:"Title"`
	ShearModulus float64     `json:"ShearModulus"`
	PoissonRatio float64     `json:"PoissonRatio"`
	Layout       string      `json:"Layout"`       // standard (default) or disloc3d
	Patches      [][]float64 `json:"Patches"`      // one 10 value row per patch, in Layout order
	Observations [][]float64 `json:"Observations"` // x, y, z rows
}

func (ip *InputParametersOkada) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersOkada) ElasticConstants() okada.ElasticConstants {
	return okada.ElasticConstants{Mu: ip.ShearModulus, Nu: ip.PoissonRatio}
}

// Inputs converts the patch and observation rows for the evaluator.
func (ip *InputParametersOkada) Inputs() (points []r3.Vec, patches []okada.FaultPatch, err error) {
	var layout okada.Layout
	if layout, err = okada.NewLayout(ip.Layout); err != nil {
		return
	}
	if patches, err = okada.PatchesFromRows(ip.Patches, layout); err != nil {
		return
	}
	if points, err = okada.PointsFromRows(ip.Observations); err != nil {
		return
	}
	return
}

func (ip *InputParametersOkada) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5g\t\t= ShearModulus\n", ip.ShearModulus)
	fmt.Printf("%8.5f\t\t= PoissonRatio\n", ip.PoissonRatio)
	fmt.Printf("[%s]\t\t= Layout\n", ip.Layout)
	fmt.Printf("[%d]\t\t\t= Patches\n", len(ip.Patches))
	fmt.Printf("[%d]\t\t\t= Observations\n", len(ip.Observations))
}
