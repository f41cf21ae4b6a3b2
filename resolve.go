/*------------------------------------------------------------------------------
* resolve.go : orbital state resolution entry points
*
* notes  : GLONASS and SBAS frames broadcast an earth fixed state vector and
*          are propagated by a second order taylor expansion around toc; all
*          keplerian constellations go through the solver (solver.go). Both
*          paths answer in km and km/s, the wire unit of the state vector
*          constellations.
*-----------------------------------------------------------------------------*/

package rinex

/* Vector3 is an earth fixed triplet (km or km/s) -----------------------------*/
type Vector3 [3]float64

/* Vector6 is position (km) stacked over velocity (km/s) ----------------------*/
type Vector6 [6]float64

func (v Vector6) PositionKm() Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector6) VelocityKmS() Vector3 {
	return Vector3{v[3], v[4], v[5]}
}

/* OrbitalState is one resolved satellite state, ready for consumers ----------*/
type OrbitalState struct {
	Epoch     Epoch   /* resolution epoch */
	Satellite SV      /* satellite identity */
	PosVelKm  Vector6 /* earth fixed position (km) and velocity (km/s) */
}

/* taylor expansion of a broadcast GLONASS/SBAS state vector around toc.
* Acceleration terms are legitimately absent from some frames and default
* to zero, the reference position and velocity never do. */
func (eph *Ephemeris) propagateStateVectorKm(toc, epoch Epoch) (Vector6, error) {
	pv, err := eph.GeoGlonassRefPosVelKm()
	if err != nil {
		return Vector6{}, err
	}
	accel, err := eph.GeoGlonassRefAccelKm()
	if err != nil {
		accel = Vector3{}
	}

	dt := epoch.Sub(toc)
	var out Vector6
	for i := 0; i < 3; i++ {
		out[i] = pv[i] + pv[i+3]*dt + 0.5*accel[i]*dt*dt
		out[i+3] = pv[i+3] + accel[i]*dt
	}
	return out, nil
}

/* ResolvePositionVelocityKm resolves the earth fixed position (km) and
* velocity (km/s) of the satellite at the given epoch. maxIteration bounds
* the kepler solver; it is ignored on the GLONASS/SBAS path. */
func (eph *Ephemeris) ResolvePositionVelocityKm(satellite SV, toc, epoch Epoch, maxIteration int) (Vector6, error) {
	if satellite.Sys.IsSbas() || satellite.Sys == SYS_GLO {
		return eph.propagateStateVectorKm(toc, epoch)
	}
	s, err := eph.solver(satellite, epoch, maxIteration)
	if err != nil {
		return Vector6{}, err
	}
	return s.PositionVelocityKm()
}

/* ResolvePositionKm resolves the earth fixed position (km) only -------------*/
func (eph *Ephemeris) ResolvePositionKm(satellite SV, toc, epoch Epoch, maxIteration int) (Vector3, error) {
	pv, err := eph.ResolvePositionVelocityKm(satellite, toc, epoch, maxIteration)
	if err != nil {
		return Vector3{}, err
	}
	return pv.PositionKm(), nil
}

/* ResolveOrbitalState packages the resolved state with its identity ---------*/
func (eph *Ephemeris) ResolveOrbitalState(satellite SV, toc, epoch Epoch, maxIteration int) (*OrbitalState, error) {
	pv, err := eph.ResolvePositionVelocityKm(satellite, toc, epoch, maxIteration)
	if err != nil {
		return nil, err
	}
	Trace(4, "resolve: %s(%s) pos=%.3f %.3f %.3f km\n", epoch, satellite, pv[0], pv[1], pv[2])
	return &OrbitalState{Epoch: epoch, Satellite: satellite, PosVelKm: pv}, nil
}

/* RelativisticClockCorrectionSec returns the eccentricity driven clock
* correction (s) and its drift (s/s) at the given epoch. Keplerian
* constellations only. */
func (eph *Ephemeris) RelativisticClockCorrectionSec(satellite SV, epoch Epoch, maxIteration int) (float64, float64, error) {
	s, err := eph.solver(satellite, epoch, maxIteration)
	if err != nil {
		return 0, 0, err
	}
	return s.dtr, s.fdDtr, nil
}
