/*------------------------------------------------------------------------------
* unit test driver : ephemeris data model, health, validity and clock
*-----------------------------------------------------------------------------*/
package rinex_test

import (
	"math"
	"testing"

	"github.com/nav-solutions/rinex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* plausible gps legacy frame, week 2115, toe thursday 0h */
func buildGpsEph() *rinex.Ephemeris {
	eph := rinex.NewEphemeris(1.0e-4, 1.0e-11, 0.0)
	fields := map[string]float64{
		"toe": 345600.0, "sqrta": 5153.79, "e": 0.01,
		"i0": 0.97, "omega0": 1.2, "m0": 0.7, "omega": 0.5,
		"deltaN": 4.5e-9, "idot": -3.0e-10, "omegaDot": -8.0e-9,
		"cus": 7.0e-6, "cuc": 1.0e-6, "cis": 5.0e-8, "cic": -2.0e-8,
		"crs": 25.0, "crc": 220.0, "tgd": 5.5e-9,
	}
	for k, v := range fields {
		eph.SetOrbitF64(k, v)
	}
	eph.Orbits["week"] = rinex.U32Item(2115)
	return eph
}

/* GetOrbitF64()/SetOrbitF64() */
func Test_orbit_store(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()

	v, err := eph.GetOrbitF64("sqrta")
	assert.NoError(err)
	assert.Equal(5153.79, v)

	_, err = eph.GetOrbitF64("nosuchfield")
	assert.ErrorIs(err, rinex.ErrMissingData)

	a0, a1, a2 := eph.ClockBiasDriftRate()
	assert.Equal(1.0e-4, a0)
	assert.Equal(1.0e-11, a1)
	assert.Equal(0.0, a2)
}

/* WithOrbit()/WithWeek() */
func Test_copy_and_extend(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()

	mod := eph.WithOrbit("e", rinex.F64Item(0.02)).WithWeek(2116)

	v, err := mod.GetOrbitF64("e")
	assert.NoError(err)
	assert.Equal(0.02, v)
	week, err := mod.WeekNumber()
	assert.NoError(err)
	assert.Equal(2116, week)

	/* the source frame is untouched */
	v, err = eph.GetOrbitF64("e")
	assert.NoError(err)
	assert.Equal(0.01, v)
	week, err = eph.WeekNumber()
	assert.NoError(err)
	assert.Equal(2115, week)
}

/* Toe() */
func Test_toe(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()

	toe, err := eph.Toe(rinex.SV{Sys: rinex.SYS_GPS, Prn: 10})
	require.NoError(t, err)
	assert.Equal(rinex.TS_GPST, toe.Scale)
	week, sec := toe.TimeOfWeek()
	assert.Equal(2115, week)
	assert.Less(math.Abs(sec-345600.0), 1e-9)

	/* beidou toe reads in bdt */
	toe, err = eph.Toe(rinex.SV{Sys: rinex.SYS_CMP, Prn: 11})
	require.NoError(t, err)
	assert.Equal(rinex.TS_BDT, toe.Scale)

	/* state vector frames carry no independent toe */
	_, err = eph.Toe(rinex.SV{Sys: rinex.SYS_GLO, Prn: 7})
	assert.ErrorIs(err, rinex.ErrBadOperation)
	_, err = eph.Toe(rinex.SV{Sys: rinex.SYS_SBS, Prn: 144})
	assert.ErrorIs(err, rinex.ErrBadOperation)

	/* truncated record */
	bare := rinex.NewEphemeris(0, 0, 0)
	_, err = bare.Toe(rinex.SV{Sys: rinex.SYS_GPS, Prn: 10})
	assert.ErrorIs(err, rinex.ErrMissingData)
}

/* SatelliteIsHealthy() */
func Test_health_dispatch(t *testing.T) {
	assert := assert.New(t)

	set := func(item rinex.OrbitItem) *rinex.Ephemeris {
		return rinex.NewEphemeris(0, 0, 0).WithOrbit("health", item)
	}

	/* gps/qzss word: healthy iff zero */
	assert.True(set(rinex.GpsQzssHealthItem(0)).SatelliteIsHealthy())
	assert.False(set(rinex.GpsQzssHealthItem(1)).SatelliteIsHealthy())
	assert.False(set(rinex.GpsQzssHealthItem(0x3f)).SatelliteIsHealthy())

	/* gps/qzss l1c: dedicated unhealthy bit */
	assert.True(set(rinex.GpsQzssL1cHealthItem(0x02)).SatelliteIsHealthy())
	assert.False(set(rinex.GpsQzssL1cHealthItem(0x01)).SatelliteIsHealthy())

	/* glonass: health word zero, almanac bit confirms when present */
	assert.True(set(rinex.GlonassHealthItem(0)).SatelliteIsHealthy())
	assert.False(set(rinex.GlonassHealthItem(4)).SatelliteIsHealthy())
	both := set(rinex.GlonassHealthItem(0)).WithOrbit("health2", rinex.GlonassHealth2Item(0x01))
	assert.True(both.SatelliteIsHealthy())
	both = set(rinex.GlonassHealthItem(0)).WithOrbit("health2", rinex.GlonassHealth2Item(0x00))
	assert.False(both.SatelliteIsHealthy())

	/* geo health words have no trusted interpretation */
	assert.False(set(rinex.GeoHealthItem(0)).SatelliteIsHealthy())
	assert.False(set(rinex.GeoHealthItem(1)).SatelliteIsHealthy())

	/* beidou sath1 bit */
	assert.True(set(rinex.BdsSatH1Item(0)).SatelliteIsHealthy())
	assert.False(set(rinex.BdsSatH1Item(1)).SatelliteIsHealthy())

	/* beidou modern enum */
	assert.True(set(rinex.BdsHealthItem(rinex.BDS_HEALTHY)).SatelliteIsHealthy())
	assert.False(set(rinex.BdsHealthItem(rinex.BDS_UNHEALTHY)).SatelliteIsHealthy())
	assert.False(set(rinex.BdsHealthItem(rinex.BDS_UNHEALTHY_TESTING)).SatelliteIsHealthy())

	/* absent or untagged health word fails closed */
	assert.False(rinex.NewEphemeris(0, 0, 0).SatelliteIsHealthy())
	assert.False(set(rinex.F64Item(0)).SatelliteIsHealthy())
}

/* SatelliteUnderTest() */
func Test_under_test(t *testing.T) {
	assert := assert.New(t)

	eph := rinex.NewEphemeris(0, 0, 0).WithOrbit("health", rinex.BdsHealthItem(rinex.BDS_UNHEALTHY_TESTING))
	assert.True(eph.SatelliteUnderTest())

	eph = rinex.NewEphemeris(0, 0, 0).WithOrbit("health", rinex.BdsHealthItem(rinex.BDS_UNHEALTHY))
	assert.False(eph.SatelliteUnderTest())

	/* only the modern beidou enum models a testing state */
	eph = rinex.NewEphemeris(0, 0, 0).WithOrbit("health", rinex.GpsQzssHealthItem(1))
	assert.False(eph.SatelliteUnderTest())
	assert.False(rinex.NewEphemeris(0, 0, 0).SatelliteUnderTest())
}

/* ValidityDurationSec() */
func Test_validity_duration(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		sys rinex.Constellation
		dur float64
	}{
		{rinex.SYS_GPS, 7200.0},
		{rinex.SYS_QZS, 7200.0},
		{rinex.SYS_GAL, 10800.0},
		{rinex.SYS_CMP, 21600.0},
		{rinex.SYS_IRN, 7200.0},
		{rinex.SYS_GLO, 1800.0},
		{rinex.SYS_SBS, 108000.0},
	}
	for _, c := range cases {
		d, ok := rinex.ValidityDurationSec(c.sys)
		assert.True(ok, c.sys.String())
		assert.Equal(c.dur, d)
	}
	_, ok := rinex.ValidityDurationSec(rinex.SYS_NONE)
	assert.False(ok)
}

/* IsValid() */
func Test_is_valid(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()
	g10 := rinex.SV{Sys: rinex.SYS_GPS, Prn: 10}

	toe, err := eph.Toe(g10)
	require.NoError(t, err)
	toc := toe

	assert.True(eph.IsValid(g10, toc, toe))
	assert.True(eph.IsValid(g10, toc, toe.Add(7199.0)))
	assert.True(eph.IsValid(g10, toc, toe.Add(-7199.0)))
	assert.False(eph.IsValid(g10, toc, toe.Add(7200.0)))
	assert.False(eph.IsValid(g10, toc, toe.Add(-7200.0)))

	/* glonass frames age against toc */
	r07 := rinex.SV{Sys: rinex.SYS_GLO, Prn: 7}
	geph := rinex.NewEphemeris(0, 0, 0)
	gtoc := rinex.NewEpoch([]float64{2020, 6, 25, 0, 0, 0}, rinex.TS_UTC)
	assert.True(geph.IsValid(r07, gtoc, gtoc.Add(1799.0)))
	assert.False(geph.IsValid(r07, gtoc, gtoc.Add(1800.0)))

	/* sbas frames tolerate a day old reference */
	s44 := rinex.SV{Sys: rinex.SYS_SBS, Prn: 144}
	stoc := rinex.NewEpoch([]float64{2020, 6, 25, 0, 0, 0}, rinex.TS_GPST)
	assert.True(geph.IsValid(s44, stoc, stoc.Add(86400.0)))
	assert.False(geph.IsValid(s44, stoc, stoc.Add(108000.0)))
}

/* ClockCorrectionSec() */
func Test_clock_correction(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()
	g10 := rinex.SV{Sys: rinex.SYS_GPS, Prn: 10}

	toc := rinex.NewEpoch([]float64{2020, 6, 25, 0, 0, 0}, rinex.TS_GPST)
	epoch := toc.Add(3600.0)

	dt, err := eph.ClockCorrectionSec(g10, toc, epoch, 2)
	assert.NoError(err)

	/* two refinement rounds of dt -= a0+a1*dt, then the polynomial */
	d := 3600.0
	d -= 1.0e-4 + 1.0e-11*d
	d -= 1.0e-4 + 1.0e-11*d
	assert.Less(math.Abs(dt-(1.0e-4+1.0e-11*d)), 1e-18)

	/* zero interval yields the bias */
	dt, err = eph.ClockCorrectionSec(g10, toc, toc, 2)
	assert.NoError(err)
	assert.Less(math.Abs(dt-1.0e-4), 1e-12)

	/* epoch and toc read in different timescales, same instant */
	bdtEpoch := toc.ToTimeScale(rinex.TS_BDT)
	dt, err = eph.ClockCorrectionSec(g10, toc, bdtEpoch, 2)
	assert.NoError(err)
	assert.Less(math.Abs(dt-1.0e-4), 1e-12)

	/* constellation without a modeled timescale */
	i01 := rinex.SV{Sys: rinex.SYS_IRN, Prn: 1}
	_, err = eph.ClockCorrectionSec(i01, toc, epoch, 2)
	var nse *rinex.NotSupportedError
	assert.ErrorAs(err, &nse)
}

/* group delay and misc accessors */
func Test_accessors(t *testing.T) {
	assert := assert.New(t)
	eph := buildGpsEph()

	tgd, err := eph.TotalGroupDelaySec()
	assert.NoError(err)
	assert.Equal(5.5e-9, tgd)

	a, err := eph.SemiMajorAxisM()
	assert.NoError(err)
	assert.Less(math.Abs(a-5153.79*5153.79), 1e-6)

	sec, err := eph.WeekSeconds()
	assert.NoError(err)
	assert.Equal(345600.0, sec)

	geph := rinex.NewEphemeris(0, 0, 0)
	geph.Orbits["channel"] = rinex.I8Item(-4)
	ch, err := geph.GlonassFdmaChannel()
	assert.NoError(err)
	assert.Equal(int8(-4), ch)
	_, err = eph.GlonassFdmaChannel()
	assert.ErrorIs(err, rinex.ErrMissingData)
}
