/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/godisloc/InputParameters"
	"github.com/notargets/godisloc/okada"
)

type ModelRect struct {
	InputFile   string
	LegacyFlags bool
	Profile     bool
}

// RectCmd represents the rect command
var RectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Superposed fields of rectangular dislocations at a set of observation points",
	Long: `
Evaluates every patch of the run file at every observation point and prints
the summed displacement U, displacement gradient D, strain S, stress E and
the status flag of each (point, patch) pair.

godisloc rect -I run.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mr := &ModelRect{}
		if mr.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		mr.LegacyFlags, _ = cmd.Flags().GetBool("legacyFlags")
		mr.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(mr)
		logger, err := NewLogger(viper.GetBool("verbose"))
		if err != nil {
			panic(err)
		}
		defer func() { _ = logger.Sync() }()
		if mr.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		res, err := RunRect(ip, viper.GetInt("parallel"), viper.GetFloat64("eps"), logger)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		PrintResult(os.Stdout, res, mr.LegacyFlags)
	},
}

func init() {
	rootCmd.AddCommand(RectCmd)
	RectCmd.Flags().StringP("inputFile", "I", "", "YAML run file with elastic constants, patches and observation points")
	RectCmd.Flags().BoolP("legacyFlags", "l", false, "print flags as decimal codes: 1 above surface, 10 negative depth, 100 singular")
	RectCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

func processInput(mr *ModelRect) (ip *InputParameters.InputParametersOkada) {
	var (
		err  error
		data []byte
	)
	if len(mr.InputFile) == 0 {
		err = fmt.Errorf("must supply a run file (-I, --inputFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
ShearModulus: 3.e10
PoissonRatio: 0.25
Layout: standard # length, width, depth, dip, strike, easting, northing, ss, ds, op
Patches:
  - [80, 50, 15, 45, 50, 440.58, 3940.11, 0.01, 0.01, 0]
Observations:
  - [454, 3943, 0]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(mr.InputFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersOkada{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

// RunRect evaluates the run file with parallel workers (0 = one per CPU)
// and corner tolerance eps.
func RunRect(ip *InputParameters.InputParametersOkada, parallel int, eps float64, logger *zap.Logger) (res *okada.Result, err error) {
	points, patches, err := ip.Inputs()
	if err != nil {
		return
	}
	ev := okada.NewEvaluator(parallel, logger)
	if eps > 0 {
		ev.Eps = eps
	}
	logger.Info("evaluating",
		zap.String("title", ip.Title), zap.Int("points", len(points)), zap.Int("patches", len(patches)))
	return ev.Evaluate(points, patches, ip.ElasticConstants())
}

// PrintResult writes one row per observation point: U as (ux, uy, uz), D
// row major, S and E as (xx, yy, zz, xy, xz, yz), then one flag per patch.
func PrintResult(w io.Writer, res *okada.Result, legacyFlags bool) {
	var (
		n          = len(res.U)
		u, d, s, e = make([]float64, 0, 3*n), make([]float64, 0, 9*n), make([]float64, 0, 6*n), make([]float64, 0, 6*n)
	)
	for i := 0; i < n; i++ {
		u = append(u, res.U[i].X, res.U[i].Y, res.U[i].Z)
		d = append(d, res.D[i].RawMatrix().Data...)
		sc, ec := res.StrainComponents(i), res.StressComponents(i)
		s = append(s, sc[:]...)
		e = append(e, ec[:]...)
	}
	printRows(w, "U", n, 3, u)
	printRows(w, "D", n, 9, d)
	printRows(w, "S", n, 6, s)
	printRows(w, "E", n, 6, e)
	fmt.Fprintf(w, "flags = \n")
	codes := res.FlagCodes()
	for i := range res.Flags {
		if legacyFlags {
			fmt.Fprintf(w, "%v\n", codes[i])
		} else {
			fmt.Fprintf(w, "%v\n", res.Flags[i])
		}
	}
}

func printRows(w io.Writer, label string, rows, cols int, data []float64) {
	if rows == 0 {
		fmt.Fprintf(w, "%s = \n[]\n", label)
		return
	}
	fmt.Fprintf(w, "%s = \n%v\n", label, mat.Formatted(mat.NewDense(rows, cols, data), mat.Squeeze()))
}
