/*------------------------------------------------------------------------------
* time.go : GNSS time and timescale functions
*
* notes  : GNSS timescales are continuous (no leap seconds) except UTC.
*          GPST, GST and QZSST share the same second markers, BDT lags GPST
*          by the 14 leap seconds accumulated before 2006/1/1, GLONASS time
*          is UTC+3h. All cross-timescale arithmetic goes through GPST.
*
* references :
*     [1] IS-GPS-200K, May 6, 2019
*     [3] European GNSS (Galileo) OS SIS ICD, Issue 1.3, December, 2016
*     [4] BeiDou SIS ICD open service signal B1I (version 3.0), February, 2019
*-----------------------------------------------------------------------------*/

package rinex

import (
	"fmt"
	"math"
)

/* Gtime carries integer seconds since 1970/1/1 plus the fraction under 1 s,
* so that sub-nanosecond clock terms survive epoch arithmetic */
type Gtime struct {
	Time int64   /* time (s) expressed by standard time_t */
	Sec  float64 /* fraction of second under 1 s */
}

/* timescale identifiers */
type TimeScale int

const (
	TS_NONE  TimeScale = iota /* unknown/unsupported */
	TS_GPST                   /* GPS time */
	TS_GST                    /* Galileo system time */
	TS_BDT                    /* BeiDou time */
	TS_QZSST                  /* QZSS time */
	TS_UTC                    /* coordinated universal time */
)

func (ts TimeScale) String() string {
	switch ts {
	case TS_GPST:
		return "GPST"
	case TS_GST:
		return "GST"
	case TS_BDT:
		return "BDT"
	case TS_QZSST:
		return "QZSST"
	case TS_UTC:
		return "UTC"
	}
	return "NONE"
}

/* timescale origins {y,m,d,h,m,s} */
var (
	gpst0 = []float64{1980, 1, 6, 0, 0, 0}  /* gps time reference */
	gst0  = []float64{1999, 8, 22, 0, 0, 0} /* galileo system time reference */
	bdt0  = []float64{2006, 1, 1, 0, 0, 0}  /* beidou time reference */
)

var leaps = [][7]float64{ /* leap seconds (y,m,d,h,m,s,utc-gpst) */
	{2017, 1, 1, 0, 0, 0, -18},
	{2015, 7, 1, 0, 0, 0, -17},
	{2012, 7, 1, 0, 0, 0, -16},
	{2009, 1, 1, 0, 0, 0, -15},
	{2006, 1, 1, 0, 0, 0, -14},
	{1999, 1, 1, 0, 0, 0, -13},
	{1997, 7, 1, 0, 0, 0, -12},
	{1996, 1, 1, 0, 0, 0, -11},
	{1994, 7, 1, 0, 0, 0, -10},
	{1993, 7, 1, 0, 0, 0, -9},
	{1992, 7, 1, 0, 0, 0, -8},
	{1991, 1, 1, 0, 0, 0, -7},
	{1990, 1, 1, 0, 0, 0, -6},
	{1988, 1, 1, 0, 0, 0, -5},
	{1985, 7, 1, 0, 0, 0, -4},
	{1983, 7, 1, 0, 0, 0, -3},
	{1982, 7, 1, 0, 0, 0, -2},
	{1981, 7, 1, 0, 0, 0, -1},
}

/* convert calendar day/time {y,m,d,h,m,s} to Gtime, proper in 1970-2099 ------*/
func Epoch2Time(ep []float64) Gtime {
	var (
		doy            = []int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
		t              Gtime
		year, mon, day = int(ep[0]), int(ep[1]), int(ep[2])
	)
	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return t
	}
	/* leap year if year%4==0 in 1901-2099 */
	days := (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2
	if year%4 == 0 && mon >= 3 {
		days++
	}
	sec := int(math.Floor(ep[5]))
	t.Time = int64(days*86400 + int(ep[3])*3600 + int(ep[4])*60 + sec)
	t.Sec = ep[5] - float64(sec)
	return t
}

/* convert Gtime to calendar day/time {y,m,d,h,m,s} ---------------------------*/
func Time2Epoch(t Gtime, ep []float64) {
	mday := []int{ /* # of days in a month */
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	days := int(t.Time / 86400)
	sec := int(t.Time - int64(days)*86400)
	day := days % 1461
	mon := 0
	for ; mon < 48; mon++ {
		if day < mday[mon] {
			break
		}
		day -= mday[mon]
	}
	ep[0] = float64(1970 + days/1461*4 + mon/12)
	ep[1] = float64(mon%12 + 1)
	ep[2] = float64(day + 1)
	ep[3] = float64(sec / 3600)
	ep[4] = float64(sec % 3600 / 60)
	ep[5] = float64(sec%60) + t.Sec
}

/* week and tow in gps time to Gtime -------------------------------------------*/
func GpsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gpst0)

	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* Gtime to week and tow in gps time -------------------------------------------*/
func Time2GpsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gpst0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))

	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* week and tow in galileo system time to Gtime --------------------------------*/
func GsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gst0)

	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* Gtime to week and tow in galileo system time --------------------------------*/
func Time2GsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gst0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))

	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* week and tow in beidou time to Gtime ----------------------------------------*/
func BDT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(bdt0)

	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* Gtime to week and tow in beidou time ----------------------------------------*/
func Time2BDT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(bdt0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))

	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* add seconds to Gtime ---------------------------------------------------------*/
func TimeAdd(t Gtime, sec float64) Gtime {
	t.Sec += sec
	tt := math.Floor(t.Sec)
	t.Time += int64(tt)
	t.Sec -= tt
	return t
}

/* time difference t1-t2 (s) ---------------------------------------------------*/
func TimeDiff(t1, t2 Gtime) float64 {
	return float64(t1.Time-t2.Time) + t1.Sec - t2.Sec
}

/* gpstime to utc considering leap seconds -------------------------------------*/
func GpsT2Utc(t Gtime) Gtime {
	for i := 0; i < len(leaps); i++ {
		tu := TimeAdd(t, leaps[i][6])
		if TimeDiff(tu, Epoch2Time(leaps[i][:])) >= 0.0 {
			return tu
		}
	}
	return t
}

/* utc to gpstime considering leap seconds -------------------------------------*/
func Utc2GpsT(t Gtime) Gtime {
	for i := 0; i < len(leaps); i++ {
		if TimeDiff(t, Epoch2Time(leaps[i][:])) >= 0.0 {
			return TimeAdd(t, -leaps[i][6])
		}
	}
	return t
}

/* gpstime to bdt, no leap seconds in bdt (ref [4] 3.3) ------------------------*/
func GpsT2BDT(t Gtime) Gtime {
	return TimeAdd(t, -14.0)
}

/* bdt to gpstime --------------------------------------------------------------*/
func BDT2GpsT(t Gtime) Gtime {
	return TimeAdd(t, 14.0)
}

/* Gtime to string yyyy/mm/dd hh:mm:ss.sss with n decimals ----------------------*/
func TimeStr(t Gtime, n int) string {
	var ep [6]float64

	if n < 0 {
		n = 0
	} else if n > 12 {
		n = 12
	}
	if 1.0-t.Sec < 0.5/math.Pow(10.0, float64(n)) {
		t.Time++
		t.Sec = 0.0
	}
	Time2Epoch(t, ep[:])
	w := 2
	if n > 0 {
		w = n + 3
	}
	return fmt.Sprintf("%04.0f/%02.0f/%02.0f %02.0f:%02.0f:%0*.*f",
		ep[0], ep[1], ep[2], ep[3], ep[4], w, n, ep[5])
}

/* Epoch is an instant tagged with the timescale its calendar reading belongs
* to. Epochs of different timescales must never be compared directly: Sub()
* transposes its operand first. */
type Epoch struct {
	Time  Gtime     /* calendar reading within Scale */
	Scale TimeScale /* timescale of the reading */
}

/* build an Epoch from calendar day/time {y,m,d,h,m,s} read in timescale ts ----*/
func NewEpoch(ep []float64, ts TimeScale) Epoch {
	return Epoch{Time: Epoch2Time(ep), Scale: ts}
}

/* build an Epoch from week number and time of week (s) of timescale ts --------*/
func EpochFromTimeOfWeek(week int, sec float64, ts TimeScale) (Epoch, error) {
	switch ts {
	case TS_GPST, TS_QZSST:
		return Epoch{Time: GpsT2Time(week, sec), Scale: ts}, nil
	case TS_GST:
		return Epoch{Time: GsT2Time(week, sec), Scale: ts}, nil
	case TS_BDT:
		return Epoch{Time: BDT2Time(week, sec), Scale: ts}, nil
	}
	return Epoch{}, fmt.Errorf("%s: no week/tow reference", ts)
}

/* calendar reading transposed to gpst -----------------------------------------*/
func (e Epoch) toGpst() Gtime {
	switch e.Scale {
	case TS_BDT:
		return BDT2GpsT(e.Time)
	case TS_UTC:
		return Utc2GpsT(e.Time)
	default:
		/* GPST, GST and QZSST second markers coincide */
		return e.Time
	}
}

/* gpst calendar reading transposed to timescale ts ----------------------------*/
func gpstToScale(t Gtime, ts TimeScale) Gtime {
	switch ts {
	case TS_BDT:
		return GpsT2BDT(t)
	case TS_UTC:
		return GpsT2Utc(t)
	default:
		return t
	}
}

/* ToTimeScale transposes the Epoch into timescale ts. Transposition is
* idempotent: converting an Epoch already expressed in ts returns it as is. */
func (e Epoch) ToTimeScale(ts TimeScale) Epoch {
	if e.Scale == ts {
		return e
	}
	return Epoch{Time: gpstToScale(e.toGpst(), ts), Scale: ts}
}

/* Sub returns e-o in seconds, transposing o into the timescale of e first ----*/
func (e Epoch) Sub(o Epoch) float64 {
	return TimeDiff(e.Time, o.ToTimeScale(e.Scale).Time)
}

/* Add returns the Epoch shifted by sec seconds, same timescale ---------------*/
func (e Epoch) Add(sec float64) Epoch {
	return Epoch{Time: TimeAdd(e.Time, sec), Scale: e.Scale}
}

/* TimeOfWeek returns the week number and time of week (s) of the Epoch within
* its own timescale */
func (e Epoch) TimeOfWeek() (int, float64) {
	var week int
	var sec float64

	switch e.Scale {
	case TS_GST:
		sec = Time2GsT(e.Time, &week)
	case TS_BDT:
		sec = Time2BDT(e.Time, &week)
	default:
		sec = Time2GpsT(e.Time, &week)
	}
	return week, sec
}

func (e Epoch) String() string {
	return fmt.Sprintf("%s %s", TimeStr(e.Time, 3), e.Scale)
}
