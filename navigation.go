/*------------------------------------------------------------------------------
* navigation.go : navigation data collection and frame selection
*
* notes  : Nav holds decoded frames keyed by publication epoch, satellite,
*          frame class and message type, sorted by epoch on insertion. Frame
*          selection applies the per-constellation validity policy and picks
*          the frame whose reference time is nearest the query epoch; on an
*          exact tie the frame inserted first wins.
*-----------------------------------------------------------------------------*/

package rinex

import "math"

/* navigation frame classes */
type NavFrameType int

const (
	FRAME_EPHEMERIS         NavFrameType = iota /* orbit and clock frame */
	FRAME_SYS_TIME_OFFSET                       /* system time offset frame */
	FRAME_ION_MODEL                             /* ionosphere model frame */
	FRAME_EARTH_ORIENTATION                     /* earth orientation frame */
)

func (ft NavFrameType) String() string {
	switch ft {
	case FRAME_EPHEMERIS:
		return "EPH"
	case FRAME_SYS_TIME_OFFSET:
		return "STO"
	case FRAME_ION_MODEL:
		return "ION"
	case FRAME_EARTH_ORIENTATION:
		return "EOP"
	}
	return "???"
}

/* navigation message types, per constellation and modernization level */
type NavMessageType int

const (
	MSG_LNAV NavMessageType = iota /* GPS/QZSS legacy */
	MSG_CNAV                       /* GPS/QZSS civil L2C/L5 */
	MSG_CNV1                       /* modern B-CNAV1 style */
	MSG_CNV2                       /* modern B-CNAV2 style */
	MSG_CNV3                       /* modern B-CNAV3 style */
	MSG_FDMA                       /* GLONASS FDMA */
	MSG_INAV                       /* Galileo I/NAV */
	MSG_FNAV                       /* Galileo F/NAV */
	MSG_D1                         /* BeiDou D1 (MEO/IGSO) */
	MSG_D2                         /* BeiDou D2 (GEO) */
	MSG_SBAS                       /* SBAS broadcast */
)

func (mt NavMessageType) String() string {
	switch mt {
	case MSG_LNAV:
		return "LNAV"
	case MSG_CNAV:
		return "CNAV"
	case MSG_CNV1:
		return "CNV1"
	case MSG_CNV2:
		return "CNV2"
	case MSG_CNV3:
		return "CNV3"
	case MSG_FDMA:
		return "FDMA"
	case MSG_INAV:
		return "INAV"
	case MSG_FNAV:
		return "FNAV"
	case MSG_D1:
		return "D1"
	case MSG_D2:
		return "D2"
	case MSG_SBAS:
		return "SBAS"
	}
	return "????"
}

/* NavKey identifies one frame in a navigation collection ---------------------*/
type NavKey struct {
	Epoch     Epoch          /* publication epoch (toc) */
	Satellite SV             /* broadcasting satellite */
	FrameType NavFrameType   /* frame class */
	MsgType   NavMessageType /* message type */
}

/* NavRecord couples a key with its decoded frame -----------------------------*/
type NavRecord struct {
	Key NavKey
	Eph *Ephemeris
}

/* Nav is an epoch-ordered navigation data collection. Selection and
* resolution are read-only and safe to run concurrently; Add must not
* overlap a resolution pass, the collection defines no internal locking. */
type Nav struct {
	Records []NavRecord
}

func NewNav() *Nav {
	return &Nav{}
}

func (nav *Nav) N() int {
	return len(nav.Records)
}

/* Add inserts a frame keeping the collection sorted by epoch. Frames sharing
* an epoch preserve their insertion order. */
func (nav *Nav) Add(key NavKey, eph *Ephemeris) {
	rec := NavRecord{Key: key, Eph: eph}
	i := len(nav.Records)
	for ; i > 0; i-- {
		if key.Epoch.Sub(nav.Records[i-1].Key.Epoch) >= 0.0 {
			break
		}
	}
	nav.Records = append(nav.Records, NavRecord{})
	copy(nav.Records[i+1:], nav.Records[i:])
	nav.Records[i] = rec
}

/* Select picks the ephemeris frame serving the satellite at the given epoch.
* GLONASS and SBAS frames are ranked by |epoch-toc| (their toe is toc),
* all others by |epoch-toe| among frames passing the validity policy. */
func (nav *Nav) Select(satellite SV, epoch Epoch) (toc, toe Epoch, eph *Ephemeris, err error) {
	stateVector := satellite.Sys.IsSbas() || satellite.Sys == SYS_GLO
	best := math.Inf(1)

	for i := range nav.Records {
		rec := &nav.Records[i]
		if rec.Key.Satellite != satellite || rec.Key.FrameType != FRAME_EPHEMERIS {
			continue
		}
		recToc := rec.Key.Epoch

		if stateVector {
			if !rec.Eph.IsValid(satellite, recToc, epoch) {
				continue
			}
			if dt := math.Abs(epoch.Sub(recToc)); dt < best {
				best, toc, toe, eph = dt, recToc, recToc, rec.Eph
			}
			continue
		}

		if !rec.Eph.IsValid(satellite, recToc, epoch) {
			continue
		}
		recToe, terr := rec.Eph.Toe(satellite)
		if terr != nil {
			Trace(3, "select: %s(%s): %v\n", epoch, satellite, terr)
			continue
		}
		if dt := math.Abs(epoch.Sub(recToe)); dt < best {
			best, toc, toe, eph = dt, recToc, recToe, rec.Eph
		}
	}

	if eph == nil {
		Trace(3, "select: %s(%s) no frame\n", epoch, satellite)
		return Epoch{}, Epoch{}, nil, &FrameSelectionError{Epoch: epoch, Satellite: satellite}
	}
	Trace(4, "select: %s(%s) toc=%s\n", epoch, satellite, toc)
	return toc, toe, eph, nil
}

/* ResolveOrbitalState selects the serving frame and resolves the satellite
* state at the given epoch */
func (nav *Nav) ResolveOrbitalState(satellite SV, epoch Epoch, maxIteration int) (*OrbitalState, error) {
	toc, _, eph, err := nav.Select(satellite, epoch)
	if err != nil {
		return nil, err
	}
	return eph.ResolveOrbitalState(satellite, toc, epoch, maxIteration)
}

/* ResolveClockCorrectionSec selects the serving frame and resolves the
* satellite clock correction (s) at the given epoch */
func (nav *Nav) ResolveClockCorrectionSec(satellite SV, epoch Epoch, numIter int) (float64, error) {
	toc, _, eph, err := nav.Select(satellite, epoch)
	if err != nil {
		return 0, err
	}
	return eph.ClockCorrectionSec(satellite, toc, epoch, numIter)
}
