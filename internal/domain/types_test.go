package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evento-live/evento-gateway/internal/domain"
)

func TestDiscountCode_Apply(t *testing.T) {
	code := domain.DiscountCode{Code: "SAVE25", Percentage: 25}

	result := code.Apply(big.NewInt(100))
	assert.Equal(t, int64(75), result.Int64())
}

func TestDiscountCode_Apply_FloorsDivision(t *testing.T) {
	// 10% off 15 wei is 13.5, floored to 13
	code := domain.DiscountCode{Code: "SAVE10", Percentage: 10}

	result := code.Apply(big.NewInt(15))
	assert.Equal(t, int64(13), result.Int64())
}

func TestDiscountCode_Apply_FullDiscount(t *testing.T) {
	code := domain.DiscountCode{Code: "FREE", Percentage: 100}

	result := code.Apply(big.NewInt(1000))
	assert.Equal(t, int64(0), result.Int64())
}

func TestDiscountCode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		code    domain.DiscountCode
		wantErr error
	}{
		{
			name: "valid minimum",
			code: domain.DiscountCode{Code: "ONE", Percentage: 1},
		},
		{
			name: "valid maximum",
			code: domain.DiscountCode{Code: "FULL", Percentage: 100},
		},
		{
			name:    "zero percentage",
			code:    domain.DiscountCode{Code: "ZERO", Percentage: 0},
			wantErr: domain.ErrInvalidPercentage,
		},
		{
			name:    "over one hundred",
			code:    domain.DiscountCode{Code: "OVER", Percentage: 101},
			wantErr: domain.ErrInvalidPercentage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.code.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTicketType_Remaining(t *testing.T) {
	ticket := domain.TicketType{MaxSupply: 100, CurrentSupply: 30}
	assert.Equal(t, uint64(70), ticket.Remaining())

	soldOut := domain.TicketType{MaxSupply: 100, CurrentSupply: 100}
	assert.Equal(t, uint64(0), soldOut.Remaining())

	// Over-minted supply must not underflow
	over := domain.TicketType{MaxSupply: 100, CurrentSupply: 120}
	assert.Equal(t, uint64(0), over.Remaining())
}

func TestTicketType_PriceForTier(t *testing.T) {
	ticket := domain.TicketType{
		Price:          big.NewInt(300),
		EarlyBirdPrice: big.NewInt(100),
		WhitelistPrice: big.NewInt(200),
	}

	assert.Equal(t, int64(300), ticket.PriceForTier(domain.TierRegular).Int64())
	assert.Equal(t, int64(100), ticket.PriceForTier(domain.TierEarlyBird).Int64())
	assert.Equal(t, int64(200), ticket.PriceForTier(domain.TierWhitelist).Int64())
}

func TestTicketType_CloneIsolatesPrices(t *testing.T) {
	original := domain.TicketType{
		Name:           "GA",
		Price:          big.NewInt(100),
		EarlyBirdPrice: big.NewInt(80),
		WhitelistPrice: big.NewInt(90),
	}

	clone := original.Clone()
	clone.Price.SetInt64(999)

	assert.Equal(t, int64(100), original.Price.Int64())
}

func TestTicketType_Equal(t *testing.T) {
	a := domain.TicketType{
		ID:             0,
		Name:           "GA",
		MaxSupply:      100,
		CurrentSupply:  10,
		Price:          big.NewInt(100),
		EarlyBirdPrice: big.NewInt(80),
		WhitelistPrice: big.NewInt(90),
		Active:         true,
	}
	b := a.Clone()
	b.ID = 5 // positional id is ignored

	assert.True(t, a.Equal(b))

	b.Price = big.NewInt(101)
	assert.False(t, a.Equal(b))
}

func TestTicketType_Validate(t *testing.T) {
	valid := domain.TicketType{
		Name:           "GA",
		MaxSupply:      100,
		Price:          big.NewInt(100),
		EarlyBirdPrice: big.NewInt(80),
		WhitelistPrice: big.NewInt(90),
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	overSupply := valid
	overSupply.CurrentSupply = 101
	assert.Error(t, overSupply.Validate())

	nilPrice := valid
	nilPrice.Price = nil
	assert.Error(t, nilPrice.Validate())
}

func TestFormatEther(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, "1.5", domain.FormatEther(wei))

	assert.Equal(t, "0", domain.FormatEther(big.NewInt(0)))
	assert.Equal(t, "0", domain.FormatEther(nil))

	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	assert.Equal(t, "1", domain.FormatEther(one))

	assert.Equal(t, "0.000000000000000001", domain.FormatEther(big.NewInt(1)))
}

func TestParseEther(t *testing.T) {
	wei, err := domain.ParseEther("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	wei, err = domain.ParseEther("2")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", wei.String())

	wei, err = domain.ParseEther("0.000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "1", wei.String())
}

func TestParseEther_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.05", "1", "12.345", "0.000000000000000042"} {
		wei, err := domain.ParseEther(s)
		require.NoError(t, err)
		assert.Equal(t, s, domain.FormatEther(wei))
	}
}

func TestParseEther_Invalid(t *testing.T) {
	_, err := domain.ParseEther("")
	assert.Error(t, err)

	_, err = domain.ParseEther("abc")
	assert.Error(t, err)

	// More than 18 fractional digits must not silently truncate
	_, err = domain.ParseEther("1.0000000000000000001")
	assert.Error(t, err)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, domain.IsValidAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
	assert.False(t, domain.IsValidAddress("not-an-address"))
	assert.False(t, domain.IsValidAddress(""))
}

func TestNormalizeAddress(t *testing.T) {
	lower := "0x8ba1f109551bd432803012645ac136ddd64dba72"
	normalized := domain.NormalizeAddress(lower)
	assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", normalized)
}
