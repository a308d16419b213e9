// Package fit provides the fit functions used to analyze swept Langmuir probe
// traces.
//
// Each fit function carries its parameters, their standard errors and the R²
// of its last fit, and can evaluate itself with first-order error propagation
// or solve for its zero crossing.
//
// # Fit Types
//
//   - **Linear**: y = m*x + b (closed-form least squares)
//   - **Exponential**: y = a*e^(alpha*x)
//   - **ExponentialPlusLinear**: y = a*e^(alpha*x) + m*x + b
//   - **ExponentialPlusOffset**: y = a*e^(alpha*x) + b
//
// The exponential families are fitted by minimizing the sum of squared
// residuals with gonum's optimize package. Parameter errors come from the
// Jacobian at the optimum, scaled by the residual variance.
//
// # Usage
//
//	f := fit.NewExponentialPlusLinear(0, 0, 0, 0)
//	if err := f.CurveFit(voltage, current); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.4f)\n", f, f.RSquared())
//
//	vf, vfErr, err := f.RootSolve(0)
//
// Several families can be compared at once:
//
//	result, err := fit.Best(voltage, current)
//	fmt.Print(result.Summary())
package fit
