package dsc

import "math/big"

// Protocol constants. LiquidationThreshold counts only half of nominal
// collateral value toward solvency, i.e. positions must stay 200%
// collateralized; LiquidationBonus rewards liquidators with an extra 10%
// of the seized quantity.
const (
	LiquidationThreshold = 50
	LiquidationBonus     = 10
	LiquidationPrecision = 100
)

var (
	// Precision is the 1e18 fixed point scale shared with the debt token.
	Precision = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	// MinHealthFactor is the solvency floor, "1.0".
	MinHealthFactor = new(big.Int).Set(Precision)
	// AdditionalFeedPrecision scales 8 decimal feed prices up to 18.
	AdditionalFeedPrecision = new(big.Int).Exp(big.NewInt(10), big.NewInt(10), nil)
	// MaxHealthFactor is the score of a debt-free account.
	MaxHealthFactor = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// HealthFactor maps (debt, collateral value) to a solvency score.
// Zero debt is unconditionally solvent. All division truncates.
func HealthFactor(debt, collateralValueUsd *big.Int) *big.Int {
	if debt == nil || debt.Sign() == 0 {
		return new(big.Int).Set(MaxHealthFactor)
	}

	adjusted := new(big.Int).Mul(collateralValueUsd, big.NewInt(LiquidationThreshold))
	adjusted.Div(adjusted, big.NewInt(LiquidationPrecision))

	score := adjusted.Mul(adjusted, Precision)
	return score.Div(score, debt)
}

// IsSolvent reports whether score clears the floor.
func IsSolvent(score *big.Int) bool {
	return score.Cmp(MinHealthFactor) >= 0
}

// BonusFor returns the liquidation bonus on a seized token amount.
func BonusFor(amount *big.Int) *big.Int {
	bonus := new(big.Int).Mul(amount, big.NewInt(LiquidationBonus))
	return bonus.Div(bonus, big.NewInt(LiquidationPrecision))
}
