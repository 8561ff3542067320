package pricing

type LineItem struct {
	Label           string
	Amount          Money
	DurationMinutes int
}

// Breakdown is what the client sees next to a booking. It is always built
// from persisted values.
type Breakdown struct {
	Base            Money
	PlatformFee     Money
	GrandTotal      Money
	Nights          int
	DurationMinutes int
	LineItems       []LineItem
}

func NewBreakdown(base, platformFee Money) Breakdown {
	return Breakdown{
		Base:        base,
		PlatformFee: platformFee,
		GrandTotal:  base + platformFee,
	}
}

func Quote(base Money, policy FeePolicy) Breakdown {
	return NewBreakdown(base, policy.Fee(base))
}
