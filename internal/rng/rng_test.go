package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 1000; i++ {
		n := c.Intn(5)
		assert.True(t, n >= 0 && n < 5)
	}

	assert.Equal(t, 0, c.Intn(1))
}

func TestSeeded(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
	}
}
