package pricing

// Money is an amount in minor currency units.
type Money int64

func (m Money) Int64() int64 { return int64(m) }

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
