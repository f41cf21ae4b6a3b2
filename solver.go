/*------------------------------------------------------------------------------
* solver.go : broadcast keplerian elements to earth fixed state vector
*
* notes  : covers GPS, Galileo, BeiDou (MEO/IGSO and GEO) and QZSS frames.
*          GLONASS and SBAS state vectors never enter this path, they are
*          propagated directly (see resolve.go).
*
*          the eccentric anomaly is obtained by fixed point iteration
*          E(i+1) = M + e*sin(E(i)) starting from 0, stopped on RTOL_KEPLER;
*          exhausting the iteration budget is ErrDiverged, never a partial
*          answer. Broadcast orbits are near circular (e < 0.1) and settle
*          well within typical budgets.
*
* references :
*     [1] IS-GPS-200K 20.3.3.4.3
*     [3] Galileo OS SIS ICD 5.1.1
*     [4] BeiDou SIS ICD B1I 5.2.4.12 (GEO rotation)
*-----------------------------------------------------------------------------*/

package rinex

import "math"

const (
	SIN_5 = -0.0871557427476582 /* sin(-5.0 deg) */
	COS_5 = 0.9961946980917456  /* cos(-5.0 deg) */
)

/* keplerSolver is the state of one propagation, kept after the anomaly
* iteration so both the MEO and the GEO projections can be derived from it */
type keplerSolver struct {
	satellite SV
	dtSeconds float64 /* propagation interval epoch-toe (s) */
	omge      float64 /* earth angular velocity of the constellation (rad/s) */

	uK       float64 /* corrected argument of latitude (rad) */
	rK       float64 /* corrected radius (m) */
	iK       float64 /* corrected inclination (rad) */
	omegaK   float64 /* corrected longitude of ascending node (rad) */
	fdUK     float64 /* du/dt (rad/s) */
	fdRK     float64 /* dr/dt (m/s) */
	fdIK     float64 /* di/dt (rad/s) */
	fdOmegaK float64 /* domega/dt (rad/s) */

	dtr   float64 /* relativistic clock correction (s) */
	fdDtr float64 /* relativistic clock drift correction (s/s) */

	x, y     float64 /* orbital plane position (m) */
	fdX, fdY float64 /* orbital plane velocity (m/s) */
}

/* per-constellation gravitational constant, earth angular velocity and
* relativistic clock factor */
func keplerConstants(sys Constellation) (mu, omge, frel float64, err error) {
	switch sys {
	case SYS_GPS, SYS_QZS:
		return MU_GPS, OMGE_GPS, F_REL_GPS, nil
	case SYS_GAL:
		return MU_GAL, OMGE_GAL, F_REL_GAL, nil
	case SYS_CMP:
		return MU_CMP, OMGE_CMP, F_REL_CMP, nil
	}
	return 0, 0, 0, &NotSupportedError{Sys: sys}
}

/* solver propagates the frame's elements to the given epoch -----------------*/
func (eph *Ephemeris) solver(satellite SV, epoch Epoch, maxIteration int) (*keplerSolver, error) {
	mu, omge, frel, err := keplerConstants(satellite.Sys)
	if err != nil {
		return nil, err
	}
	k, err := eph.ToKeplerian(satellite)
	if err != nil {
		return nil, err
	}

	dt := k.DtSec(epoch)
	Trace(5, "solver: %s(%s) dt=%.3f\n", epoch, satellite, dt)

	a := k.SmaM
	if adot, err := eph.CnavAdotMS(); err == nil {
		a += adot * dt
	}

	n0 := math.Sqrt(mu / (a * a * a))
	n := n0 + k.DnRadS
	mK := k.MaRad + n*dt

	/* kepler's equation by fixed point iteration */
	eK, eKPrev := 0.0, mK
	i := 0
	for ; math.Abs(eK-eKPrev) > RTOL_KEPLER && i <= maxIteration; i++ {
		eKPrev = eK
		eK = mK + k.Ecc*math.Sin(eKPrev)
	}
	if i > maxIteration {
		Trace(2, "solver: %s kepler iteration overflow\n", satellite)
		return nil, ErrDiverged
	}

	sinE, cosE := math.Sin(eK), math.Cos(eK)

	/* true anomaly and argument of latitude */
	vK := math.Atan2(math.Sqrt(1.0-k.Ecc*k.Ecc)*sinE, cosE-k.Ecc)
	phiK := vK + k.AopRad
	sin2p, cos2p := math.Sin(2.0*phiK), math.Cos(2.0*phiK)

	s := &keplerSolver{
		satellite: satellite,
		dtSeconds: dt,
		omge:      omge,
	}

	/* harmonic corrections */
	s.uK = phiK + k.CusRad*sin2p + k.CucRad*cos2p
	s.rK = a*(1.0-k.Ecc*cosE) + k.CrsM*sin2p + k.CrcM*cos2p
	s.iK = k.IncRad + k.CisRad*sin2p + k.CicRad*cos2p + k.IdotRadS*dt

	/* time derivatives, chained from the anomaly rate */
	fdE := n / (1.0 - k.Ecc*cosE)
	cosHalf := math.Cos(vK/2.0) / math.Cos(eK/2.0)
	fdPhi := math.Sqrt((1.0+k.Ecc)/(1.0-k.Ecc)) * cosHalf * cosHalf * fdE

	s.fdUK = fdPhi * (1.0 + 2.0*(k.CusRad*cos2p-k.CucRad*sin2p))
	s.fdRK = a*k.Ecc*sinE*fdE + 2.0*fdPhi*(k.CrsM*cos2p-k.CrcM*sin2p)
	s.fdIK = k.IdotRadS + 2.0*fdPhi*(k.CisRad*cos2p-k.CicRad*sin2p)

	/* ascending node, referenced to the greenwich meridian at the start of
	* the toe week through the omge*toes term */
	_, toes := k.Epoch.TimeOfWeek()
	if satellite.IsBeidouGeo() {
		s.omegaK = k.LonganRad + k.OmegaDotRadS*dt - omge*toes
		s.fdOmegaK = k.OmegaDotRadS
	} else {
		s.omegaK = k.LonganRad + (k.OmegaDotRadS-omge)*dt - omge*toes
		s.fdOmegaK = k.OmegaDotRadS - omge
	}

	/* relativistic clock terms */
	sqrta := math.Sqrt(a)
	s.dtr = frel * k.Ecc * sqrta * sinE
	s.fdDtr = frel * k.Ecc * sqrta * cosE * fdE

	/* orbital plane state */
	sinU, cosU := math.Sin(s.uK), math.Cos(s.uK)
	s.x = s.rK * cosU
	s.y = s.rK * sinU
	s.fdX = s.fdRK*cosU - s.y*s.fdUK
	s.fdY = s.fdRK*sinU + s.x*s.fdUK

	return s, nil
}

/* project the orbital plane state into the earth fixed frame. For GEO this
* is an intermediate frame still rotating with the ascending node. */
func (s *keplerSolver) projected() (pos, vel [3]float64) {
	sinO, cosO := math.Sin(s.omegaK), math.Cos(s.omegaK)
	sinI, cosI := math.Sin(s.iK), math.Cos(s.iK)

	pos[0] = s.x*cosO - s.y*cosI*sinO
	pos[1] = s.x*sinO + s.y*cosI*cosO
	pos[2] = s.y * sinI

	vel[0] = -pos[1]*s.fdOmegaK - (s.fdY*cosI-pos[2]*s.fdIK)*sinO + s.fdX*cosO
	vel[1] = pos[0]*s.fdOmegaK + (s.fdY*cosI-pos[2]*s.fdIK)*cosO + s.fdX*sinO
	vel[2] = s.fdY*sinI + s.y*s.fdIK*cosI
	return pos, vel
}

/* beidou GEO: undo the 5 deg inclined frame trick of ref [4] by rotating the
* projected state around z by omge*dt and around x by -5 deg */
func (s *keplerSolver) geoPositionVelocityM() (Vector3, Vector3) {
	pg, vg := s.projected()

	psi := s.omge * s.dtSeconds
	sinP, cosP := math.Sin(psi), math.Cos(psi)

	p := pg[1]*COS_5 + pg[2]*SIN_5
	vp := vg[1]*COS_5 + vg[2]*SIN_5

	pos := Vector3{
		pg[0]*cosP + p*sinP,
		-pg[0]*sinP + p*cosP,
		-pg[1]*SIN_5 + pg[2]*COS_5,
	}
	vel := Vector3{
		vg[0]*cosP - pg[0]*s.omge*sinP + vp*sinP + p*s.omge*cosP,
		-vg[0]*sinP - pg[0]*s.omge*cosP + vp*cosP - p*s.omge*sinP,
		-vg[1]*SIN_5 + vg[2]*COS_5,
	}
	return pos, vel
}

/* PositionVelocityKm returns the earth fixed position (km) and velocity
* (km/s) of the propagated state */
func (s *keplerSolver) PositionVelocityKm() (Vector6, error) {
	var pos, vel Vector3

	switch {
	case s.satellite.IsBeidouGeo():
		pos, vel = s.geoPositionVelocityM()
	case s.satellite.Sys == SYS_GPS, s.satellite.Sys == SYS_GAL,
		s.satellite.Sys == SYS_CMP, s.satellite.Sys == SYS_QZS:
		p, v := s.projected()
		pos, vel = Vector3(p), Vector3(v)
	default:
		return Vector6{}, &NotSupportedError{Sys: s.satellite.Sys}
	}

	return Vector6{
		pos[0] * 1e-3, pos[1] * 1e-3, pos[2] * 1e-3,
		vel[0] * 1e-3, vel[1] * 1e-3, vel[2] * 1e-3,
	}, nil
}
