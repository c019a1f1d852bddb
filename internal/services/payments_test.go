package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), MinorUnits(10))
	assert.Equal(t, int64(50), MinorUnits(0.5))
	assert.Equal(t, int64(0), MinorUnits(0))
}

func TestMinorUnitsTruncates(t *testing.T) {
	// 19.99 has no exact float64 form; 19.99*100 lands just under 1999 and
	// truncation keeps it there, same as the frontend's parseInt.
	assert.Equal(t, int64(1998), MinorUnits(19.99))
	assert.Equal(t, int64(12), MinorUnits(0.129))
}
