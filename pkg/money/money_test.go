package money_test

import (
	"testing"

	"candela/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestFromMajorRoundsHalfUp(t *testing.T) {
	assert.Equal(t, money.Cents(4999), money.FromMajor(49.99))
	assert.Equal(t, money.Cents(100), money.FromMajor(1.0))
	assert.Equal(t, money.Cents(1), money.FromMajor(0.005))
	assert.Equal(t, money.Cents(0), money.FromMajor(0))
}

func TestMajorIsExactDivision(t *testing.T) {
	assert.Equal(t, 49.99, money.Cents(4999).Major())
	assert.Equal(t, 0.01, money.Cents(1).Major())
	assert.Equal(t, 0.0, money.Cents(0).Major())
}

// Round-trip property: every decimal amount with at most two fractional
// digits survives a major -> minor -> major conversion.
func TestRoundTrip(t *testing.T) {
	for cents := int64(0); cents <= 100000; cents++ {
		major := money.Cents(cents).Major()
		assert.Equal(t, money.Cents(cents), money.FromMajor(major), "round trip failed at %d cents", cents)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "49.99", money.Cents(4999).String())
	assert.Equal(t, "0.05", money.Cents(5).String())
	assert.Equal(t, "12.00", money.Cents(1200).String())
	assert.Equal(t, "-3.95", money.Cents(-395).String())
}
