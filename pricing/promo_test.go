package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePromoTotal_TableHit(t *testing.T) {
	// 40000 is a Table A key with pair price 58000.
	total := ComputePromoTotal(40000, 2, TableA, FlatDiscount)
	assert.Equal(t, 58000, total)
}

func TestComputePromoTotal_EstimateFallback(t *testing.T) {
	// 61000 is not in Table A: round(61000*2*0.745/1000)*1000 = 91000.
	total := ComputePromoTotal(61000, 2, TableA, FlatDiscount)
	assert.Equal(t, 91000, total)
}

func TestComputePromoTotal_SingleTicket(t *testing.T) {
	total := ComputePromoTotal(50000, 1, TableA, FlatDiscount)
	assert.Equal(t, 45000, total)
}

func TestComputePromoTotal_OddCount(t *testing.T) {
	// 5 tickets = 2 pairs at the Table A pair price plus 1 discounted single.
	total := ComputePromoTotal(50000, 5, TableA, FlatDiscount)
	assert.Equal(t, 2*76000+45000, total)
}

func TestComputePromoTotal_TablesDiverge(t *testing.T) {
	// The two configured tables intentionally disagree where their key
	// ranges overlap.
	a := ComputePromoTotal(50000, 2, TableA, FlatDiscount)
	b := ComputePromoTotal(50000, 2, TableB, FlatDiscount)
	assert.Equal(t, 76000, a)
	assert.Equal(t, 75000, b)
}

func TestComputePromoTotal_TableBPremiumKeys(t *testing.T) {
	// Table B extends to 120000 where Table A has no entry.
	assert.Equal(t, 170000, ComputePromoTotal(120000, 2, TableB, FlatDiscount))
	assert.Equal(t, 179000, ComputePromoTotal(120000, 2, TableA, FlatDiscount))
}

func TestEstimatePairPrice_RoundsToThousand(t *testing.T) {
	// 61000*2*0.745 = 90890 -> 91000
	assert.Equal(t, 91000, EstimatePairPrice(61000))
	// 50000*2*0.745 = 74500 -> 75000 (round half up to nearest thousand)
	assert.Equal(t, 75000, EstimatePairPrice(50000))
}

func TestComputeTimeBasedPromo_BeforeCutoff(t *testing.T) {
	res, err := ComputeTimeBasedPromo(50000, 2, "15:30")

	assert.NoError(t, err)
	assert.Equal(t, 100000, res.Normal)
	assert.Equal(t, 75000, res.Promo)
	assert.Equal(t, 25000, res.Saved)
}

func TestComputeTimeBasedPromo_AfterCutoff(t *testing.T) {
	res, err := ComputeTimeBasedPromo(50000, 2, "20:00")

	assert.NoError(t, err)
	assert.Equal(t, 100000, res.Normal)
	assert.Equal(t, 85000, res.Promo)
	assert.Equal(t, 15000, res.Saved)
}

func TestComputeTimeBasedPromo_CutoffBoundary(t *testing.T) {
	// 16:00 exactly is evening rate; 15:59 is still matinee.
	evening, err := ComputeTimeBasedPromo(40000, 1, "16:00")
	assert.NoError(t, err)
	assert.Equal(t, 34000, evening.Promo)

	matinee, err := ComputeTimeBasedPromo(40000, 1, "15:59")
	assert.NoError(t, err)
	assert.Equal(t, 30000, matinee.Promo)
}

func TestComputeTimeBasedPromo_BadTime(t *testing.T) {
	for _, raw := range []string{"", "25:00", "12:61", "noon", "12"} {
		_, err := ComputeTimeBasedPromo(50000, 2, raw)
		assert.Error(t, err, raw)
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	m, err := MinutesSinceMidnight("15:30")
	assert.NoError(t, err)
	assert.Equal(t, 930, m)

	m, err = MinutesSinceMidnight("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 65.000", FormatRupiah(65000))
	assert.Equal(t, "Rp 5.000", FormatRupiah(5000))
	assert.Equal(t, "Rp 197.000", FormatRupiah(197000))
	assert.Equal(t, "Rp 1.500.000", FormatRupiah(1500000))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
}
