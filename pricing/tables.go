package pricing

// PairTable maps a single-ticket price to the pre-negotiated price for a
// pair of tickets under the buy-2 promo.
type PairTable map[int]int

// FlatDiscount is taken off one unpaired trailing ticket.
const FlatDiscount = 5000

// Two table instances ship with the tool. Their value sets differ and the
// divergence may be deliberate per-flow tuning, so they are kept separate
// instead of merged; see DESIGN.md.

// TableA backs the order-form flow.
var TableA = PairTable{
	25000: 36000,
	27000: 39000,
	28000: 40000,
	29000: 44000,
	30000: 46000,
	32000: 47500,
	33000: 49000,
	35000: 53000,
	36000: 54000,
	37000: 55000,
	38000: 56000,
	40000: 58000,
	41000: 60000,
	42000: 61000,
	43000: 62000,
	45000: 65000,
	47000: 70000,
	48000: 74000,
	50000: 76000,
	51000: 78000,
	52000: 80000,
	55000: 83000,
}

// TableB backs the standalone discount calculator, with larger spreads at
// the premium price points.
var TableB = PairTable{
	35000:  60000,
	40000:  65000,
	45000:  70000,
	50000:  75000,
	55000:  80000,
	60000:  85000,
	65000:  90000,
	70000:  100000,
	75000:  105000,
	80000:  115000,
	85000:  120000,
	90000:  130000,
	95000:  135000,
	100000: 145000,
	105000: 150000,
	110000: 155000,
	115000: 165000,
	120000: 170000,
}
