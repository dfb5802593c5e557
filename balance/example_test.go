package balance_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chembalance/balance"
)

// ExampleEquation balances a combustion reaction.
func ExampleEquation() {
	out, err := balance.Equation("C5H12 + O2 -> CO2 + H2O", "->")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: C5H12 + 8O2 -> 5CO2 + 6H2O
}

// ExampleBalance shows the coefficients and the failure classes.
func ExampleBalance() {
	res, _ := balance.Balance("C6H12O6 -> CH3CH2OH + CO2")
	fmt.Println(res.Output, res.Coefficients)

	_, err := balance.Balance("H2 + O2 -> H2O + H2O2")
	fmt.Println(errors.Is(err, balance.ErrUnderdeterminedSystem))
	// Output:
	// C6H12O6 -> 2CH3CH2OH + 2CO2 [1 2 2]
	// true
}

// ExampleVerify checks a hand-written equation.
func ExampleVerify() {
	rep, _ := balance.Verify("2H2 + O2 -> 2H2O")
	fmt.Println(rep.Balanced, rep.Coefficients)
	// Output: true [2 1 2]
}
