package pricing

import "math"

// ComputePromoTotal prices ticketCount tickets under the buy-2 promo.
// Tickets are grouped into pairs; each pair costs the table price when the
// unit price is a known key, otherwise 74.5% of double the unit price
// rounded to the nearest thousand. An unpaired trailing ticket costs the
// unit price minus flatDiscount.
//
// ticketCount must be >= 1 and unitPrice > 0; callers guard (the parser
// already rejects non-positive prices).
func ComputePromoTotal(unitPrice, ticketCount int, table PairTable, flatDiscount int) int {
	pairs := ticketCount / 2
	remainder := ticketCount % 2

	total := 0
	for range pairs {
		if pairPrice, ok := table[unitPrice]; ok {
			total += pairPrice
		} else {
			total += EstimatePairPrice(unitPrice)
		}
	}
	if remainder == 1 {
		total += unitPrice - flatDiscount
	}
	return total
}

// EstimatePairPrice is the fallback for unit prices absent from the lookup
// table: round(unit*2*0.745/1000)*1000.
func EstimatePairPrice(unitPrice int) int {
	est := float64(unitPrice) * 2 * 0.745
	return int(math.Round(est/1000)) * 1000
}
