/*------------------------------------------------------------------------------
* azel.go : line of sight geometry on the WGS84 ellipsoid
*
* notes  : an Almanac answers azimuth/elevation/range queries against a
*          ground position. WGS84Almanac is the built-in implementation, the
*          interface exists so coarse almanac sources or non-WGS84 frames can
*          be substituted by the caller.
*-----------------------------------------------------------------------------*/

package rinex

import "math"

/* AzElRange is one line of sight solution -----------------------------------*/
type AzElRange struct {
	AzimuthRad   float64 /* azimuth, clockwise from north (0 <= az < 2pi) */
	ElevationRad float64 /* elevation above local horizon (-pi/2 to pi/2) */
	RangeKm      float64 /* geometric range, sagnac corrected (km) */
}

/* Almanac answers line of sight queries for a satellite position seen from a
* ground position, both earth fixed in km */
type Almanac interface {
	AzimuthElevationRange(epoch Epoch, svPosKm, rxPosKm Vector3) (AzElRange, error)
}

/* WGS84Almanac resolves the line of sight on the WGS84 ellipsoid -------------*/
type WGS84Almanac struct{}

/* ecef position (m) to geodetic {lat,lon,h} (rad,m) --------------------------*/
func ecef2Pos(r [3]float64, pos []float64) {
	e2 := FE_WGS84 * (2.0 - FE_WGS84)
	r2 := r[0]*r[0] + r[1]*r[1]
	var z, zk, sinp float64
	v := RE_WGS84
	zk = 0
	for z = r[2]; math.Abs(z-zk) >= 1e-4; {
		zk = z
		sinp = z / math.Sqrt(r2+z*z)
		v = RE_WGS84 / math.Sqrt(1.0-e2*sinp*sinp)
		z = r[2] + v*e2*sinp
	}
	if r2 > 1e-12 {
		pos[0] = math.Atan(z / math.Sqrt(r2))
		pos[1] = math.Atan2(r[1], r[0])
	} else {
		if r[2] > 0.0 {
			pos[0] = PI / 2.0
		} else {
			pos[0] = -PI / 2.0
		}
		pos[1] = 0.0
	}
	pos[2] = math.Sqrt(r2+z*z) - v
}

/* ecef vector to local tangential {e,n,u} at geodetic {lat,lon} --------------*/
func ecef2Enu(pos []float64, r [3]float64, e []float64) {
	sinp := math.Sin(pos[0])
	cosp := math.Cos(pos[0])
	sinl := math.Sin(pos[1])
	cosl := math.Cos(pos[1])

	e[0] = -sinl*r[0] + cosl*r[1]
	e[1] = -sinp*cosl*r[0] - sinp*sinl*r[1] + cosp*r[2]
	e[2] = cosp*cosl*r[0] + cosp*sinl*r[1] + sinp*r[2]
}

/* AzimuthElevationRange resolves the line of sight from rxPosKm to svPosKm.
* The range carries the sagnac correction for the signal flight time. */
func (WGS84Almanac) AzimuthElevationRange(epoch Epoch, svPosKm, rxPosKm Vector3) (AzElRange, error) {
	var rs, rr, e [3]float64
	for i := 0; i < 3; i++ {
		rs[i] = svPosKm[i] * 1e3
		rr[i] = rxPosKm[i] * 1e3
	}

	if math.Sqrt(rs[0]*rs[0]+rs[1]*rs[1]+rs[2]*rs[2]) < RE_WGS84 {
		return AzElRange{}, ErrBadOperation
	}

	for i := 0; i < 3; i++ {
		e[i] = rs[i] - rr[i]
	}
	r := math.Sqrt(e[0]*e[0] + e[1]*e[1] + e[2]*e[2])
	for i := 0; i < 3; i++ {
		e[i] /= r
	}
	rangeM := r + OMGE_GPS*(rs[0]*rr[1]-rs[1]*rr[0])/CLIGHT

	var pos [3]float64
	ecef2Pos(rr, pos[:])

	az, el := 0.0, PI/2.0
	if pos[2] > -RE_WGS84 {
		var enu [3]float64
		ecef2Enu(pos[:], e, enu[:])
		if enu[0]*enu[0]+enu[1]*enu[1] >= 1e-12 {
			az = math.Atan2(enu[0], enu[1])
		}
		if az < 0.0 {
			az += 2 * PI
		}
		el = math.Asin(enu[2])
	}

	return AzElRange{AzimuthRad: az, ElevationRad: el, RangeKm: rangeM * 1e-3}, nil
}

/* ResolveAzimuthElevationRange resolves the satellite state from the
* collection and answers the line of sight from the ground position */
func (nav *Nav) ResolveAzimuthElevationRange(alm Almanac, satellite SV, epoch Epoch, rxPosKm Vector3, maxIteration int) (AzElRange, error) {
	state, err := nav.ResolveOrbitalState(satellite, epoch, maxIteration)
	if err != nil {
		return AzElRange{}, err
	}
	aer, err := alm.AzimuthElevationRange(epoch, state.PosVelKm.PositionKm(), rxPosKm)
	if err != nil {
		return AzElRange{}, &AlmanacError{Err: err}
	}
	Trace(4, "azel: %s(%s) az=%.1f el=%.1f\n", epoch, satellite, aer.AzimuthRad*R2D, aer.ElevationRad*R2D)
	return aer, nil
}
