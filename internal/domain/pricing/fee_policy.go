package pricing

import "petstay-backend/internal/pkg/errs"

const basisPointsDenominator = 10000

var ErrInvalidFeePolicy = errs.Validation("invalid fee policy")

// FeePolicy charges a percentage of the base (in basis points), a flat amount, or both.
type FeePolicy struct {
	PercentageBps *int64 `json:"percentageBps,omitempty"`
	FlatAmount    *int64 `json:"flatAmount,omitempty"`
}

// FeePolicies holds the policy applied to each booking kind.
type FeePolicies struct {
	Room   FeePolicy `json:"room"`
	Sitter FeePolicy `json:"sitter"`
}

func (p FeePolicy) Validate() error {
	if p.PercentageBps != nil && (*p.PercentageBps < 0 || *p.PercentageBps > basisPointsDenominator) {
		return ErrInvalidFeePolicy
	}
	if p.FlatAmount != nil && *p.FlatAmount < 0 {
		return ErrInvalidFeePolicy
	}
	return nil
}

func (p FeePolicies) Validate() error {
	if err := p.Room.Validate(); err != nil {
		return errs.Wrap(err, "room")
	}
	if err := p.Sitter.Validate(); err != nil {
		return errs.Wrap(err, "sitter")
	}
	return nil
}

// Fee rounds the percentage part half up to the nearest minor unit.
func (p FeePolicy) Fee(base Money) Money {
	var fee Money
	if p.PercentageBps != nil && *p.PercentageBps > 0 && base > 0 {
		fee += Money((int64(base)**p.PercentageBps + basisPointsDenominator/2) / basisPointsDenominator)
	}
	if p.FlatAmount != nil {
		fee += Money(*p.FlatAmount)
	}
	return fee
}
