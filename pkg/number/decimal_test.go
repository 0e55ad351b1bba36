package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestWadRoundTrip(t *testing.T) {
	data := map[string]string{
		"10":     "10000000000000000000",
		"0.5":    "500000000000000000",
		"2000":   "2000000000000000000000",
		"0.0001": "100000000000000",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			wad := WadFromDecimal(Decimal(k))
			assert.Equal(t, v, wad.String())
			assert.Equal(t, k, DecimalFromWad(wad).String())
		})
	}
}

func TestWadTruncates(t *testing.T) {
	// 19th decimal is dropped, never rounded
	wad := WadFromDecimal(Decimal("0.0000000000000000019"))
	assert.Equal(t, "1", wad.String())
}
