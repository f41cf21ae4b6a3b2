/*------------------------------------------------------------------------------
* unit test driver : satellite identity functions
*-----------------------------------------------------------------------------*/
package rinex_test

import (
	"testing"

	"github.com/nav-solutions/rinex"
	"github.com/stretchr/testify/assert"
)

/* ParseSV() */
func Test_parsesv(t *testing.T) {
	assert := assert.New(t)

	sv, err := rinex.ParseSV("G10")
	assert.NoError(err)
	assert.Equal(rinex.SV{Sys: rinex.SYS_GPS, Prn: 10}, sv)

	sv, err = rinex.ParseSV("R07")
	assert.NoError(err)
	assert.Equal(rinex.SV{Sys: rinex.SYS_GLO, Prn: 7}, sv)

	sv, err = rinex.ParseSV("E30")
	assert.NoError(err)
	assert.Equal(rinex.SV{Sys: rinex.SYS_GAL, Prn: 30}, sv)

	/* sbas identifiers are prn-100 */
	sv, err = rinex.ParseSV("S44")
	assert.NoError(err)
	assert.Equal(rinex.SV{Sys: rinex.SYS_SBS, Prn: 144}, sv)

	_, err = rinex.ParseSV("X01")
	assert.Error(err)
	_, err = rinex.ParseSV("G")
	assert.Error(err)
	_, err = rinex.ParseSV("")
	assert.Error(err)
}

/* String() */
func Test_sv_string(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("G10", rinex.SV{Sys: rinex.SYS_GPS, Prn: 10}.String())
	assert.Equal("C05", rinex.SV{Sys: rinex.SYS_CMP, Prn: 5}.String())
	assert.Equal("S44", rinex.SV{Sys: rinex.SYS_SBS, Prn: 144}.String())
}

/* Timescale() */
func Test_constellation_timescale(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		sys rinex.Constellation
		ts  rinex.TimeScale
	}{
		{rinex.SYS_GPS, rinex.TS_GPST},
		{rinex.SYS_GAL, rinex.TS_GST},
		{rinex.SYS_CMP, rinex.TS_BDT},
		{rinex.SYS_QZS, rinex.TS_QZSST},
		{rinex.SYS_GLO, rinex.TS_UTC},
		{rinex.SYS_SBS, rinex.TS_GPST},
	}
	for _, c := range cases {
		ts, ok := c.sys.Timescale()
		assert.True(ok, c.sys.String())
		assert.Equal(c.ts, ts)
	}
	_, ok := rinex.SYS_IRN.Timescale()
	assert.False(ok)
}

/* IsBeidouGeo() */
func Test_beidou_geo(t *testing.T) {
	assert := assert.New(t)

	for prn := 1; prn <= 5; prn++ {
		assert.True(rinex.SV{Sys: rinex.SYS_CMP, Prn: prn}.IsBeidouGeo())
	}
	assert.True(rinex.SV{Sys: rinex.SYS_CMP, Prn: 59}.IsBeidouGeo())
	assert.True(rinex.SV{Sys: rinex.SYS_CMP, Prn: 60}.IsBeidouGeo())

	/* igso and meo vehicles follow the keplerian path */
	assert.False(rinex.SV{Sys: rinex.SYS_CMP, Prn: 6}.IsBeidouGeo())
	assert.False(rinex.SV{Sys: rinex.SYS_CMP, Prn: 38}.IsBeidouGeo())
	assert.False(rinex.SV{Sys: rinex.SYS_CMP, Prn: 58}.IsBeidouGeo())
	assert.False(rinex.SV{Sys: rinex.SYS_GPS, Prn: 1}.IsBeidouGeo())
}
