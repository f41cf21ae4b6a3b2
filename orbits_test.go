/*------------------------------------------------------------------------------
* unit test driver : orbital parameter items
*-----------------------------------------------------------------------------*/
package rinex_test

import (
	"testing"

	"github.com/nav-solutions/rinex"
	"github.com/stretchr/testify/assert"
)

func Test_orbit_item_casts(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3.5, rinex.F64Item(3.5).AsF64())
	assert.Equal(uint32(2115), rinex.U32Item(2115).AsU32())
	assert.Equal(int8(-7), rinex.I8Item(-7).AsI8())

	/* float cast is always feasible */
	assert.Equal(2115.0, rinex.U32Item(2115).AsF64())
	assert.Equal(1.0, rinex.GpsQzssHealthItem(1).AsF64())
}

func Test_orbit_item_flag_families(t *testing.T) {
	assert := assert.New(t)

	word, ok := rinex.GpsQzssHealthItem(0x3f).AsGpsQzssHealth()
	assert.True(ok)
	assert.Equal(uint32(0x3f), word)

	/* a health word must be read with the family that produced it */
	_, ok = rinex.GpsQzssHealthItem(0x3f).AsGlonassHealth()
	assert.False(ok)
	_, ok = rinex.F64Item(0).AsBdsHealth()
	assert.False(ok)
	_, ok = rinex.BdsSatH1Item(1).AsBdsHealth()
	assert.False(ok)

	state, ok := rinex.BdsHealthItem(rinex.BDS_UNHEALTHY_TESTING).AsBdsHealth()
	assert.True(ok)
	assert.Equal(rinex.BDS_UNHEALTHY_TESTING, state)
}
