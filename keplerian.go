/*------------------------------------------------------------------------------
* keplerian.go : keplerian orbital elements of broadcast navigation frames
*
* notes  : Keplerian gathers the orbital terms of one frame in solver-ready
*          units, cut loose from the string-keyed parameter store. It only
*          exists for constellations broadcasting keplerian elements, GLONASS
*          and SBAS state vectors have no such view.
*-----------------------------------------------------------------------------*/

package rinex

import "math"

/* Keplerian is the element set of one frame at its reference time ------------*/
type Keplerian struct {
	Epoch Epoch /* reference time (toe) in the constellation timescale */

	SmaM         float64 /* semi-major axis (m) */
	Ecc          float64 /* eccentricity */
	IncRad       float64 /* inclination (rad) */
	LonganRad    float64 /* longitude of ascending node (rad) */
	MaRad        float64 /* mean anomaly (rad) */
	AopRad       float64 /* argument of perigee (rad) */
	DnRadS       float64 /* mean motion difference (rad/s) */
	IdotRadS     float64 /* inclination rate (rad/s) */
	OmegaDotRadS float64 /* right ascension rate (rad/s) */

	CusRad float64 /* latitude argument sine harmonic (rad) */
	CucRad float64 /* latitude argument cosine harmonic (rad) */
	CisRad float64 /* inclination sine harmonic (rad) */
	CicRad float64 /* inclination cosine harmonic (rad) */
	CrsM   float64 /* radius sine harmonic (m) */
	CrcM   float64 /* radius cosine harmonic (m) */
}

/* DtSec returns the propagation interval epoch-toe (s), transposing the
* epoch into the toe timescale and resolving week crossovers */
func (k *Keplerian) DtSec(epoch Epoch) float64 {
	dt := epoch.Sub(k.Epoch)
	for dt > 302400.0 {
		dt -= 604800.0
	}
	for dt < -302400.0 {
		dt += 604800.0
	}
	return dt
}

/* ToKeplerian extracts the element set of the frame. ErrBadOperation for
* GLONASS and SBAS frames, ErrMissingData when the record is truncated. */
func (eph *Ephemeris) ToKeplerian(satellite SV) (*Keplerian, error) {
	toe, err := eph.Toe(satellite)
	if err != nil {
		return nil, err
	}
	k := &Keplerian{Epoch: toe}

	if k.SmaM, err = eph.SemiMajorAxisM(); err != nil {
		return nil, err
	}
	if k.Ecc, err = eph.Eccentricity(); err != nil {
		return nil, err
	}
	if k.IncRad, err = eph.InclinationRad(); err != nil {
		return nil, err
	}
	if k.LonganRad, err = eph.LongitudeAscendingNodeRad(); err != nil {
		return nil, err
	}
	if k.MaRad, err = eph.MeanAnomalyRad(); err != nil {
		return nil, err
	}
	if k.AopRad, err = eph.ArgumentOfPerigeeRad(); err != nil {
		return nil, err
	}
	if k.DnRadS, err = eph.MeanMotionDifferenceRadS(); err != nil {
		return nil, err
	}
	if k.IdotRadS, err = eph.InclinationRateRadS(); err != nil {
		return nil, err
	}
	if k.OmegaDotRadS, err = eph.RightAscensionRateRadS(); err != nil {
		return nil, err
	}
	if k.CisRad, k.CicRad, err = eph.HarmonicCorrectionISinICos(); err != nil {
		return nil, err
	}
	if k.CusRad, k.CucRad, err = eph.HarmonicCorrectionUSinUCos(); err != nil {
		return nil, err
	}
	if k.CrsM, k.CrcM, err = eph.HarmonicCorrectionRSinRCos(); err != nil {
		return nil, err
	}
	return k, nil
}

/* WithKeplerian returns a copy of the Ephemeris with all orbital terms
* overwritten from the element set. The inverse of ToKeplerian. */
func (eph *Ephemeris) WithKeplerian(k *Keplerian) *Ephemeris {
	s := eph.clone()
	week, sec := k.Epoch.TimeOfWeek()

	s.Orbits["week"] = U32Item(uint32(week))
	s.Orbits["toe"] = F64Item(sec)
	s.Orbits["sqrta"] = F64Item(math.Sqrt(k.SmaM))
	s.Orbits["e"] = F64Item(k.Ecc)
	s.Orbits["i0"] = F64Item(k.IncRad)
	s.Orbits["omega0"] = F64Item(k.LonganRad)
	s.Orbits["m0"] = F64Item(k.MaRad)
	s.Orbits["omega"] = F64Item(k.AopRad)
	s.Orbits["deltaN"] = F64Item(k.DnRadS)
	s.Orbits["idot"] = F64Item(k.IdotRadS)
	s.Orbits["omegaDot"] = F64Item(k.OmegaDotRadS)
	s.Orbits["cus"] = F64Item(k.CusRad)
	s.Orbits["cuc"] = F64Item(k.CucRad)
	s.Orbits["cis"] = F64Item(k.CisRad)
	s.Orbits["cic"] = F64Item(k.CicRad)
	s.Orbits["crs"] = F64Item(k.CrsM)
	s.Orbits["crc"] = F64Item(k.CrcM)
	return s
}
