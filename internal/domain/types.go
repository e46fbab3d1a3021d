package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Tier identifies which price column of a ticket type applies to a purchase.
type Tier string

const (
	TierRegular   Tier = "regular"
	TierEarlyBird Tier = "early_bird"
	TierWhitelist Tier = "whitelist"
)

// TicketType mirrors one row of the contract's ticket table. The ID is the
// positional index within a catalog snapshot and is stable only for that
// snapshot; the contract itself stores tickets as an ordered array.
// All monetary amounts are wei-denominated integers.
type TicketType struct {
	ID             int
	Name           string
	MaxSupply      uint64
	CurrentSupply  uint64
	Price          *big.Int
	EarlyBirdPrice *big.Int
	WhitelistPrice *big.Int
	Active         bool
}

// PriceForTier returns the wei amount for the given tier.
func (t TicketType) PriceForTier(tier Tier) *big.Int {
	switch tier {
	case TierEarlyBird:
		return t.EarlyBirdPrice
	case TierWhitelist:
		return t.WhitelistPrice
	default:
		return t.Price
	}
}

// Remaining returns the number of tickets still mintable. The value is
// advisory: the contract's own supply accounting is authoritative.
func (t TicketType) Remaining() uint64 {
	if t.CurrentSupply >= t.MaxSupply {
		return 0
	}
	return t.MaxSupply - t.CurrentSupply
}

// Clone returns a deep copy, including the big.Int price fields, so snapshot
// holders never share mutable state.
func (t TicketType) Clone() TicketType {
	c := t
	c.Price = cloneBig(t.Price)
	c.EarlyBirdPrice = cloneBig(t.EarlyBirdPrice)
	c.WhitelistPrice = cloneBig(t.WhitelistPrice)
	return c
}

// Equal reports field-for-field equality with another ticket type, ignoring
// the positional ID.
func (t TicketType) Equal(o TicketType) bool {
	return t.Name == o.Name &&
		t.MaxSupply == o.MaxSupply &&
		t.CurrentSupply == o.CurrentSupply &&
		bigEqual(t.Price, o.Price) &&
		bigEqual(t.EarlyBirdPrice, o.EarlyBirdPrice) &&
		bigEqual(t.WhitelistPrice, o.WhitelistPrice) &&
		t.Active == o.Active
}

// Validate checks the local invariants of a ticket row before it is sent to
// the contract.
func (t TicketType) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("ticket name is required")
	}
	if t.CurrentSupply > t.MaxSupply {
		return fmt.Errorf("current supply %d exceeds max supply %d", t.CurrentSupply, t.MaxSupply)
	}
	for _, p := range []*big.Int{t.Price, t.EarlyBirdPrice, t.WhitelistPrice} {
		if p == nil || p.Sign() < 0 {
			return fmt.Errorf("ticket prices must be non-negative")
		}
	}
	return nil
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// SalePhaseFlags holds the four global contract flags read on every pricing
// decision. EventCancelled overrides the other three by policy, enforced in
// the pricing resolver rather than on the contract.
type SalePhaseFlags struct {
	SaleActive      bool
	EarlyBirdActive bool
	WhitelistActive bool
	EventCancelled  bool
}

// DiscountCode is a registered percentage discount. Codes are immutable once
// written to the contract.
type DiscountCode struct {
	Code       string
	Percentage uint8
}

// Validate checks the 1..100 percentage invariant.
func (d DiscountCode) Validate() error {
	if d.Code == "" {
		return fmt.Errorf("discount code is required")
	}
	if d.Percentage < 1 || d.Percentage > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidPercentage, d.Percentage)
	}
	return nil
}

// Apply returns price reduced by the discount percentage. The division floors,
// matching the contract's integer arithmetic, so the client never computes a
// higher total than the contract expects.
func (d DiscountCode) Apply(price *big.Int) *big.Int {
	discounted := new(big.Int).Mul(price, big.NewInt(int64(100-d.Percentage)))
	return discounted.Div(discounted, big.NewInt(100))
}

// IsValidAddress reports whether s is a well-formed hex Ethereum address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress returns the EIP-55 checksummed form of a hex address.
func NormalizeAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders a wei amount as a decimal ether string for the
// presentation boundary. All internal arithmetic stays in wei.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
	}
	abs := new(big.Int).Abs(wei)
	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(abs, weiPerEther, frac)
	if frac.Sign() == 0 {
		return sign + whole.String()
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%018s", frac.String()), "0")
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr)
}

// ParseEther parses a decimal ether string into wei. More than 18 fractional
// digits is an error rather than a silent truncation.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	parts := strings.SplitN(s, ".", 2)
	whole, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	wei := new(big.Int).Mul(whole, weiPerEther)
	if len(parts) == 2 {
		fracStr := parts[1]
		if len(fracStr) > 18 {
			return nil, fmt.Errorf("amount %q has more than 18 decimal places", s)
		}
		frac, ok := new(big.Int).SetString(fracStr+strings.Repeat("0", 18-len(fracStr)), 10)
		if !ok || frac.Sign() < 0 {
			return nil, fmt.Errorf("invalid amount: %q", s)
		}
		if wei.Sign() < 0 {
			wei.Sub(wei, frac)
		} else {
			wei.Add(wei, frac)
		}
	}
	return wei, nil
}
