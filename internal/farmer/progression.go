package farmer

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
)

// NextTitle returns the tier above the current one. ok is false at the top tier.
func (f *Farmer) NextTitle() (domain.TitleSpec, bool) {
	next, ok := f.title.Next()
	if !ok {
		return domain.TitleSpec{}, false
	}
	return next.Spec(), true
}

// CanRegister checks the next tier's requirements without paying
func (f *Farmer) CanRegister() error {
	next, ok := f.NextTitle()
	if !ok {
		return domain.ErrMaxTitle
	}
	if f.level < next.RequiredLevel {
		return domain.ErrLevelTooLow
	}
	if !f.CanAfford(next.RegistrationFee) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// Register pays the fee and advances exactly one tier
func (f *Farmer) Register(day int) (domain.ActionResult, error) {
	if err := f.CanRegister(); err != nil {
		return domain.ActionResult{}, err
	}
	next, _ := f.NextTitle()
	f.spend(next.RegistrationFee)
	f.title = next.Title
	return f.result(domain.VerbRegister, nil, day, -next.RegistrationFee, 0, 0), nil
}
