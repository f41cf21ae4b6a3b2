/*------------------------------------------------------------------------------
* sv.go : satellite identity and constellation functions
*
* notes  : satellites are identified by {constellation, prn}. SBAS vehicles
*          use their full PRN (120-158) internally, the 2-digit identifier
*          of the "Sxx" notation is prn-100.
*-----------------------------------------------------------------------------*/

package rinex

import (
	"fmt"
	"strings"
)

/* navigation system identifiers */
type Constellation int

const (
	SYS_NONE Constellation = 0x00 /* navigation system: none */
	SYS_GPS  Constellation = 0x01 /* navigation system: GPS */
	SYS_SBS  Constellation = 0x02 /* navigation system: SBAS */
	SYS_GLO  Constellation = 0x04 /* navigation system: GLONASS */
	SYS_GAL  Constellation = 0x08 /* navigation system: Galileo */
	SYS_QZS  Constellation = 0x10 /* navigation system: QZSS */
	SYS_CMP  Constellation = 0x20 /* navigation system: BeiDou */
	SYS_IRN  Constellation = 0x40 /* navigation system: IRNSS */
)

var sysCodes = map[byte]Constellation{
	'G': SYS_GPS, 'R': SYS_GLO, 'E': SYS_GAL, 'J': SYS_QZS,
	'C': SYS_CMP, 'I': SYS_IRN, 'S': SYS_SBS,
}

func (sys Constellation) String() string {
	switch sys {
	case SYS_GPS:
		return "GPS"
	case SYS_SBS:
		return "SBAS"
	case SYS_GLO:
		return "GLONASS"
	case SYS_GAL:
		return "Galileo"
	case SYS_QZS:
		return "QZSS"
	case SYS_CMP:
		return "BeiDou"
	case SYS_IRN:
		return "IRNSS"
	}
	return "unknown"
}

/* single-letter code of the constellation ("G","R","E","J","C","I","S") ------*/
func (sys Constellation) Code() byte {
	for c, s := range sysCodes {
		if s == sys {
			return c
		}
	}
	return '?'
}

/* IsSbas reports whether the constellation is a geostationary augmentation
* system (WAAS, EGNOS, MSAS, GAGAN, ...) */
func (sys Constellation) IsSbas() bool {
	return sys == SYS_SBS
}

/* Timescale returns the native timescale broadcast messages of the
* constellation refer to. ok is false when no timescale is modeled. */
func (sys Constellation) Timescale() (TimeScale, bool) {
	switch sys {
	case SYS_GPS:
		return TS_GPST, true
	case SYS_GAL:
		return TS_GST, true
	case SYS_CMP:
		return TS_BDT, true
	case SYS_QZS:
		return TS_QZSST, true
	case SYS_GLO:
		return TS_UTC, true
	case SYS_SBS:
		return TS_GPST, true
	}
	return TS_NONE, false
}

/* SV is a satellite identity. Value type, equality by both fields. */
type SV struct {
	Sys Constellation /* constellation */
	Prn int           /* PRN or GLONASS slot number */
}

/* ParseSV decodes a "Gnn" style satellite identifier ("G10","R07","S44") ----*/
func ParseSV(id string) (SV, error) {
	id = strings.TrimSpace(id)
	if len(id) < 2 {
		return SV{}, fmt.Errorf("invalid satellite id %q", id)
	}
	sys, ok := sysCodes[id[0]]
	if !ok {
		return SV{}, fmt.Errorf("invalid satellite id %q", id)
	}
	var num int
	if _, err := fmt.Sscanf(id[1:], "%d", &num); err != nil {
		return SV{}, fmt.Errorf("invalid satellite id %q", id)
	}
	if sys == SYS_SBS {
		num += 100
	}
	return SV{Sys: sys, Prn: num}, nil
}

func (sv SV) String() string {
	num := sv.Prn
	if sv.Sys == SYS_SBS {
		num -= 100
	}
	return fmt.Sprintf("%c%02d", sv.Sys.Code(), num)
}

/* IsBeidouGeo reports whether the satellite is a BeiDou geostationary
* vehicle (C01-C05, C59-C63, BDS ICD table 4-1). IGSO vehicles are not part
* of this class and follow the MEO path. */
func (sv SV) IsBeidouGeo() bool {
	return sv.Sys == SYS_CMP && (sv.Prn <= 5 || sv.Prn >= 59)
}
