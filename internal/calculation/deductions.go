package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/income-tax-calculator/internal/domain"
	"github.com/taxgo/income-tax-calculator/pkg/money"
)

// DeductionEngine maps income and deduction inputs to a capped
// DeductionBreakdown. It holds no state between calls.
type DeductionEngine struct {
	Rules domain.DeductionRules
}

// NewDeductionEngine creates a deduction engine with the canonical
// allowance amounts and caps.
func NewDeductionEngine() *DeductionEngine {
	return &DeductionEngine{Rules: domain.DefaultDeductionRules()}
}

// NewDeductionEngineWithRules creates a deduction engine with
// configurable rules. A zero-valued rule set falls back to the
// canonical defaults.
func NewDeductionEngineWithRules(rules domain.DeductionRules) *DeductionEngine {
	if rules.PersonalAllowance.IsZero() && rules.RetirementCombinedCap.IsZero() {
		rules = domain.DefaultDeductionRules()
	}
	return &DeductionEngine{Rules: rules}
}

// ComputeDeductions applies every allowance and deduction rule,
// each independently capped. Negative amounts are floored at zero
// before any cap, so no category contributes negatively.
func (de *DeductionEngine) ComputeDeductions(income domain.IncomeInputs, ded domain.DeductionInputs) domain.DeductionBreakdown {
	r := de.Rules

	spouse := decimal.Zero
	if ded.SpouseHasNoIncome {
		spouse = r.SpouseAllowance
	}

	children := r.ChildAllowance.Mul(decimal.NewFromInt(clampCount(ded.NumChildren)))
	disabled := r.DisabledAllowance.Mul(decimal.NewFromInt(clampCount(ded.NumDisabledDependents)))

	parents := decimal.Zero
	for _, p := range []domain.DependentInfo{ded.Father, ded.Mother} {
		if de.parentQualifies(p) {
			parents = parents.Add(r.ParentAllowance)
		}
	}

	socialSecurity := money.Cap(money.ClampZero(ded.SocialSecurity), r.SocialSecurityCap)
	mortgage := money.Cap(money.ClampZero(ded.MortgageInterest), r.MortgageCap)

	// Each premium is capped individually, then the combined cap
	// dominates the sum.
	life := money.Cap(money.ClampZero(ded.LifeInsurance), r.LifeInsuranceCap)
	health := money.Cap(money.ClampZero(ded.HealthInsurance), r.HealthInsuranceCap)
	lifeHealth := money.Cap(life.Add(health), r.LifeHealthCombinedCap)

	// Provident fund is capped against the salary fraction and the
	// combined ceiling before joining the retirement bucket; the
	// bucket sum is then re-capped.
	pfCap := money.ClampZero(income.Salary).Mul(r.ProvidentFundSalaryRate)
	providentFund := decimal.Min(money.ClampZero(ded.ProvidentFund), pfCap, r.RetirementCombinedCap)
	retirement := money.Cap(
		providentFund.Add(money.ClampZero(ded.RetirementFund)).Add(money.ClampZero(ded.PensionInsurance)),
		r.RetirementCombinedCap,
	)

	donations := money.ClampZero(ded.Donations)

	bd := domain.DeductionBreakdown{
		Personal:            r.PersonalAllowance,
		Spouse:              spouse,
		Children:            children,
		Parents:             parents,
		DisabledDependents:  disabled,
		SocialSecurity:      socialSecurity,
		MortgageInterest:    mortgage,
		LifeHealthInsurance: lifeHealth,
		Retirement:          retirement,
		Donations:           donations,
	}
	bd.TotalAllowances = bd.Personal.Add(bd.Spouse).Add(bd.Children).Add(bd.Parents).Add(bd.DisabledDependents)
	bd.TotalOther = bd.SocialSecurity.Add(bd.MortgageInterest).Add(bd.LifeHealthInsurance).Add(bd.Retirement).Add(bd.Donations)
	bd.TotalDeductions = bd.TotalAllowances.Add(bd.TotalOther)
	return bd
}

func (de *DeductionEngine) parentQualifies(p domain.DependentInfo) bool {
	return p.Present &&
		p.Age >= de.Rules.ParentMinAge &&
		money.ClampZero(p.AnnualIncome).LessThanOrEqual(de.Rules.ParentIncomeLimit)
}

func clampCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
