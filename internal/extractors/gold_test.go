package extractors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGoldPerGram(t *testing.T) {
	quote, err := ComputeGoldPerGram(decimal.NewFromInt(2000), decimal.NewFromInt(300))
	require.NoError(t, err)

	// 2000 * 300 / 31.1034768 = 19290.4479..., rounded to 2dp.
	require.NotNil(t, quote.PerGram24K)
	assert.Equal(t, 19290.45, *quote.PerGram24K)

	// 22k is always 24k * 22/24.
	require.NotNil(t, quote.PerGram22K)
	assert.Equal(t, 17682.91, *quote.PerGram22K)
}

func TestComputeGoldPerGramInvalidInput(t *testing.T) {
	cases := []struct {
		name        string
		usdPerOunce decimal.Decimal
		usdToLkr    decimal.Decimal
	}{
		{"zero ounce price", decimal.Zero, decimal.NewFromInt(300)},
		{"negative ounce price", decimal.NewFromInt(-2000), decimal.NewFromInt(300)},
		{"zero rate", decimal.NewFromInt(2000), decimal.Zero},
		{"negative rate", decimal.NewFromInt(2000), decimal.NewFromInt(-300)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := ComputeGoldPerGram(tc.usdPerOunce, tc.usdToLkr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrComputation)
			assert.Nil(t, quote.PerGram24K)
			assert.Nil(t, quote.PerGram22K)
		})
	}
}

func TestExtractUSDPerOunce(t *testing.T) {
	payload := []byte(`{"ts":1717228800,"items":[{"curr":"USD","xauPrice":2327.55,"xagPrice":30.41}]}`)

	d, err := ExtractUSDPerOunce(payload, "items.0.xauPrice")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(2327.55)))
}

func TestExtractUSDPerOunceMissingPath(t *testing.T) {
	_, err := ExtractUSDPerOunce([]byte(`{"items":[]}`), "items.0.xauPrice")
	assert.Error(t, err)
}

func TestExtractUSDPerOunceNonPositive(t *testing.T) {
	_, err := ExtractUSDPerOunce([]byte(`{"items":[{"xauPrice":0}]}`), "items.0.xauPrice")
	assert.Error(t, err)
}
