/*------------------------------------------------------------------------------
* ephemeris.go : broadcast ephemeris data model, accessors and clock functions
*
* notes  : an Ephemeris is the decoded snapshot of one broadcast navigation
*          message. The clock polynomial terms are always present, orbital
*          terms depend on the constellation and message revision and live in
*          the orbital parameter store. The store field names below are the
*          contract consumed by the external RINEX/BINEX/RTCM/UBX codecs:
*
*            toe e sqrta i0 omega omega0 m0 deltaN idot omegaDot
*            cus cuc cis cic crs crc
*            week iode iodc health health2 tgd adot channel
*            posX posY posZ velX velY velZ accelX accelY accelZ
*
* references :
*     [1] IS-GPS-200K, May 6, 2019
*     [2] GLONASS ICD (Version 5.1), 2008
*     [3] Galileo OS SIS ICD, Issue 1.3, December, 2016
*     [4] BeiDou SIS ICD open service signal B1I (version 3.0), February, 2019
*-----------------------------------------------------------------------------*/

package rinex

/* Ephemeris describes the content of one radio navigation message at
* publication time. Constructed by a decoder, consumed read-only by the
* solver; never mutated after entering a selection pool except through the
* copy-and-extend WithOrbit/WithWeek builders. */
type Ephemeris struct {
	ClockBias      float64 /* clock bias (s) */
	ClockDrift     float64 /* clock drift (s/s) */
	ClockDriftRate float64 /* clock drift rate (s/s^2) */

	Orbits map[string]OrbitItem /* constellation/revision dependent fields */
}

/* NewEphemeris builds an Ephemeris carrying only the clock polynomial -------*/
func NewEphemeris(bias, drift, driftRate float64) *Ephemeris {
	return &Ephemeris{
		ClockBias:      bias,
		ClockDrift:     drift,
		ClockDriftRate: driftRate,
		Orbits:         make(map[string]OrbitItem),
	}
}

/* ClockBiasDriftRate returns the (a0,a1,a2) clock polynomial ----------------*/
func (eph *Ephemeris) ClockBiasDriftRate() (float64, float64, float64) {
	return eph.ClockBias, eph.ClockDrift, eph.ClockDriftRate
}

/* GetOrbitF64 returns the requested store field. Cast to float64 is always
* feasible, whatever the inner interpretation. ErrMissingData on absent
* fields, physically meaningful terms are never defaulted. */
func (eph *Ephemeris) GetOrbitF64(field string) (float64, error) {
	item, ok := eph.Orbits[field]
	if !ok {
		return 0, ErrMissingData
	}
	return item.AsF64(), nil
}

/* SetOrbitF64 stores a plain float field ------------------------------------*/
func (eph *Ephemeris) SetOrbitF64(field string, value float64) {
	if eph.Orbits == nil {
		eph.Orbits = make(map[string]OrbitItem)
	}
	eph.Orbits[field] = F64Item(value)
}

/* clone returns a deep copy, the base of the copy-and-extend builders -------*/
func (eph *Ephemeris) clone() *Ephemeris {
	s := &Ephemeris{
		ClockBias:      eph.ClockBias,
		ClockDrift:     eph.ClockDrift,
		ClockDriftRate: eph.ClockDriftRate,
		Orbits:         make(map[string]OrbitItem, len(eph.Orbits)),
	}
	for k, v := range eph.Orbits {
		s.Orbits[k] = v
	}
	return s
}

/* WithOrbit returns a copy of the Ephemeris with one store field replaced ---*/
func (eph *Ephemeris) WithOrbit(field string, item OrbitItem) *Ephemeris {
	s := eph.clone()
	s.Orbits[field] = item
	return s
}

/* WithWeek returns a copy of the Ephemeris with the week counter replaced ---*/
func (eph *Ephemeris) WithWeek(week int) *Ephemeris {
	return eph.WithOrbit("week", U32Item(uint32(week)))
}

/* WeekNumber returns the weeks elapsed since timescale origin at reference
* time. Applies to all but GEO and GLONASS frames. */
func (eph *Ephemeris) WeekNumber() (int, error) {
	item, ok := eph.Orbits["week"]
	if !ok {
		return 0, ErrMissingData
	}
	return int(item.AsU32()), nil
}

/* WeekSeconds returns the seconds into the week at reference time -----------*/
func (eph *Ephemeris) WeekSeconds() (float64, error) {
	return eph.GetOrbitF64("toe")
}

/* TotalGroupDelaySec returns the TGD value in seconds -----------------------*/
func (eph *Ephemeris) TotalGroupDelaySec() (float64, error) {
	return eph.GetOrbitF64("tgd")
}

/* SemiMajorAxisM returns the semi-major axis (m) at reference time ----------*/
func (eph *Ephemeris) SemiMajorAxisM() (float64, error) {
	sqrta, err := eph.GetOrbitF64("sqrta")
	if err != nil {
		return 0, err
	}
	return sqrta * sqrta, nil
}

/* Eccentricity returns the orbital eccentricity at reference time -----------*/
func (eph *Ephemeris) Eccentricity() (float64, error) {
	return eph.GetOrbitF64("e")
}

/* InclinationRad returns the inclination (rad) at reference time ------------*/
func (eph *Ephemeris) InclinationRad() (float64, error) {
	return eph.GetOrbitF64("i0")
}

/* LongitudeAscendingNodeRad returns the longitude of the ascending node
* (rad) at reference time */
func (eph *Ephemeris) LongitudeAscendingNodeRad() (float64, error) {
	return eph.GetOrbitF64("omega0")
}

/* MeanAnomalyRad returns the mean anomaly (rad) at reference time -----------*/
func (eph *Ephemeris) MeanAnomalyRad() (float64, error) {
	return eph.GetOrbitF64("m0")
}

/* ArgumentOfPerigeeRad returns the argument of perigee (rad) ----------------*/
func (eph *Ephemeris) ArgumentOfPerigeeRad() (float64, error) {
	return eph.GetOrbitF64("omega")
}

/* MeanMotionDifferenceRadS returns the mean motion difference (rad/s) -------*/
func (eph *Ephemeris) MeanMotionDifferenceRadS() (float64, error) {
	return eph.GetOrbitF64("deltaN")
}

/* InclinationRateRadS returns the inclination rate of change (rad/s) --------*/
func (eph *Ephemeris) InclinationRateRadS() (float64, error) {
	return eph.GetOrbitF64("idot")
}

/* RightAscensionRateRadS returns the right ascension rate of change (rad/s) -*/
func (eph *Ephemeris) RightAscensionRateRadS() (float64, error) {
	return eph.GetOrbitF64("omegaDot")
}

/* HarmonicCorrectionISinICos returns the (cis,cic) inclination harmonic
* correction amplitudes (rad) */
func (eph *Ephemeris) HarmonicCorrectionISinICos() (float64, float64, error) {
	cic, err := eph.GetOrbitF64("cic")
	if err != nil {
		return 0, 0, err
	}
	cis, err := eph.GetOrbitF64("cis")
	if err != nil {
		return 0, 0, err
	}
	return cis, cic, nil
}

/* HarmonicCorrectionUSinUCos returns the (cus,cuc) latitude argument
* harmonic correction amplitudes (rad) */
func (eph *Ephemeris) HarmonicCorrectionUSinUCos() (float64, float64, error) {
	cuc, err := eph.GetOrbitF64("cuc")
	if err != nil {
		return 0, 0, err
	}
	cus, err := eph.GetOrbitF64("cus")
	if err != nil {
		return 0, 0, err
	}
	return cus, cuc, nil
}

/* HarmonicCorrectionRSinRCos returns the (crs,crc) radius harmonic
* correction amplitudes (m) */
func (eph *Ephemeris) HarmonicCorrectionRSinRCos() (float64, float64, error) {
	crc, err := eph.GetOrbitF64("crc")
	if err != nil {
		return 0, 0, err
	}
	crs, err := eph.GetOrbitF64("crs")
	if err != nil {
		return 0, 0, err
	}
	return crs, crc, nil
}

/* CnavAdotMS returns the semi-major axis rate correction (m/s) of modern
* CNAV messages */
func (eph *Ephemeris) CnavAdotMS() (float64, error) {
	return eph.GetOrbitF64("adot")
}

/* GlonassFdmaChannel returns the GLONASS FDMA channel number ----------------*/
func (eph *Ephemeris) GlonassFdmaChannel() (int8, error) {
	item, ok := eph.Orbits["channel"]
	if !ok {
		return 0, ErrMissingData
	}
	return item.AsI8(), nil
}

/* GeoGlonassRefPosVelKm returns the broadcast reference position and
* velocity of a GEO or GLONASS frame, in km and km/s (earth fixed frame) */
func (eph *Ephemeris) GeoGlonassRefPosVelKm() (Vector6, error) {
	var v Vector6
	for i, field := range []string{"posX", "posY", "posZ", "velX", "velY", "velZ"} {
		value, err := eph.GetOrbitF64(field)
		if err != nil {
			return Vector6{}, err
		}
		v[i] = value
	}
	return v, nil
}

/* GeoGlonassRefAccelKm returns the broadcast reference acceleration of a
* GEO or GLONASS frame, in km/s^2 */
func (eph *Ephemeris) GeoGlonassRefAccelKm() (Vector3, error) {
	var v Vector3
	for i, field := range []string{"accelX", "accelY", "accelZ"} {
		value, err := eph.GetOrbitF64(field)
		if err != nil {
			return Vector3{}, err
		}
		v[i] = value
	}
	return v, nil
}

/* Toe returns the time of ephemeris as an Epoch in the timescale of the
* broadcasting constellation. ErrBadOperation for GLONASS and SBAS frames,
* which carry no independent toe. */
func (eph *Ephemeris) Toe(satellite SV) (Epoch, error) {
	if satellite.Sys.IsSbas() || satellite.Sys == SYS_GLO {
		return Epoch{}, ErrBadOperation
	}

	week, err := eph.WeekNumber()
	if err != nil {
		return Epoch{}, err
	}
	sec, err := eph.WeekSeconds()
	if err != nil {
		return Epoch{}, err
	}

	switch satellite.Sys {
	case SYS_GPS, SYS_GAL:
		return EpochFromTimeOfWeek(week, sec, TS_GPST)
	case SYS_QZS:
		return EpochFromTimeOfWeek(week, sec, TS_QZSST)
	case SYS_CMP:
		return EpochFromTimeOfWeek(week, sec, TS_BDT)
	}
	return Epoch{}, &NotSupportedError{Sys: satellite.Sys}
}

/* SatelliteIsHealthy reports whether this frame declares the satellite
* suitable for navigation. The health word is dispatched to the flag family
* it was decoded with; an absent or unrecognized health representation is
* unhealthy (fail closed). */
func (eph *Ephemeris) SatelliteIsHealthy() bool {
	health, ok := eph.Orbits["health"]
	if !ok {
		return false
	}

	if word, ok := health.AsGpsQzssHealth(); ok {
		return word == 0
	}
	if bits, ok := health.AsGpsQzssL1cHealth(); ok {
		return bits&GPS_QZS_L1C_UNHEALTHY == 0
	}
	if word, ok := health.AsGlonassHealth(); ok {
		if health2, ok := eph.Orbits["health2"]; ok {
			bits, _ := health2.AsGlonassHealth2()
			return word == 0 && bits&GLO_HEALTHY_ALMANAC != 0
		}
		return word == 0
	}
	if _, ok := health.AsGeoHealth(); ok {
		/* no trusted interpretation of the GEO health word: fail closed */
		return false
	}
	if bit, ok := health.AsBdsSatH1(); ok {
		return bit&BDS_SATH1_UNHEALTHY == 0
	}
	if state, ok := health.AsBdsHealth(); ok {
		return state == BDS_HEALTHY
	}
	return false
}

/* SatelliteUnderTest reports the dedicated testing state, which only the
* modern BeiDou health enum carries */
func (eph *Ephemeris) SatelliteUnderTest() bool {
	health, ok := eph.Orbits["health"]
	if !ok {
		return false
	}
	if state, ok := health.AsBdsHealth(); ok {
		return state == BDS_UNHEALTHY_TESTING
	}
	return false
}

/* ValidityDurationSec returns the freshness window (s) of broadcast frames
* of the constellation. ok is false for unsupported constellations. */
func ValidityDurationSec(sys Constellation) (float64, bool) {
	switch sys {
	case SYS_GPS:
		return MAXDTOE, true
	case SYS_QZS:
		return MAXDTOE_QZS, true
	case SYS_GAL:
		return MAXDTOE_GAL, true
	case SYS_CMP:
		return MAXDTOE_CMP, true
	case SYS_IRN:
		return MAXDTOE_IRN, true
	case SYS_GLO:
		return MAXDTOE_GLO, true
	case SYS_SBS:
		return MAXDTOE_SBS, true
	}
	return 0, false
}

/* IsValid reports whether this frame may serve navigation at the given
* epoch. GLONASS and SBAS frames are aged against toc, all others against
* toe; the two reference points are deliberately different. */
func (eph *Ephemeris) IsValid(satellite SV, toc, epoch Epoch) bool {
	maxDtoe, ok := ValidityDurationSec(satellite.Sys)
	if !ok {
		Trace(3, "is_valid: %s(%s) constellation not supported\n", epoch, satellite)
		return false
	}

	if satellite.Sys.IsSbas() || satellite.Sys == SYS_GLO {
		return abs(epoch.Sub(toc)) < maxDtoe
	}
	toe, err := eph.Toe(satellite)
	if err != nil {
		Trace(3, "is_valid: %s(%s): %v\n", epoch, satellite, err)
		return false
	}
	return abs(epoch.Sub(toe)) < maxDtoe
}

/* ClockCorrectionSec resolves the satellite clock correction (s) at the
* given epoch, iterating the clock polynomial for exactly numIter refinement
* rounds (the polynomial converges quickly and predictably, no tolerance
* check is needed). toc and epoch are transposed into the satellite's
* native timescale first. */
func (eph *Ephemeris) ClockCorrectionSec(satellite SV, toc, epoch Epoch, numIter int) (float64, error) {
	ts, ok := satellite.Sys.Timescale()
	if !ok {
		return 0, &NotSupportedError{Sys: satellite.Sys}
	}

	tSv := epoch.ToTimeScale(ts)
	tocSv := toc.ToTimeScale(ts)

	a0, a1, a2 := eph.ClockBiasDriftRate()
	dt := tSv.Sub(tocSv)

	for i := 0; i < numIter; i++ {
		dt -= a0 + a1*dt + a2*dt*dt
	}
	return a0 + a1*dt + a2*dt*dt, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
