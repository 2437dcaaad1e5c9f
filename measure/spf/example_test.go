package spf_test

import (
	"fmt"

	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

func flat(absorbance float64) spectral.Spectrum {
	s := make(spectral.Spectrum, spectral.BandSPF.Len())
	for i := range s {
		s[i] = absorbance
	}
	return s
}

func ExampleInitialSPF() {
	values, _ := spf.InitialSPF(spectral.Single(flat(1)), integrate.Trapezoid)
	fmt.Printf("SPF: %.2f\n", values[0])
	// Output:
	// SPF: 10.00
}

func ExampleEvaluator_Search() {
	eval, _ := spf.NewEvaluator(spectral.BandSPF, integrate.Trapezoid)
	params, _ := spf.NewSearchParams(1e-3, 10000)

	c, _ := eval.Search(flat(1), 50, params)
	adjusted, _ := eval.Evaluate(flat(1), c)
	fmt.Printf("C: %.3f\n", c)
	fmt.Printf("adjusted SPF: %.1f\n", adjusted)
	// Output:
	// C: 1.699
	// adjusted SPF: 50.0
}

func ExampleCalculator_Adjust() {
	calc, _ := spf.New(spf.WithSearchParams(spf.SearchParams{Step: 1e-3, MaxIterations: 10000}))
	batch := spectral.Batch{flat(0.5), flat(1)}

	adj, _ := calc.Adjust(batch, spf.ModeBoth, []float64{12}, spectral.BatchOn)
	for i := range batch {
		fmt.Printf("C=%.3f SPF=%.2f\n", adj.Coefficients[i], adj.SPF[i])
	}
	// Output:
	// C=2.159 SPF=12.01
	// C=1.080 SPF=12.02
}
