/*------------------------------------------------------------------------------
* orbits.go : orbital parameter store of broadcast navigation records
*
* notes  : field names form a public contract shared with the external text
*          and binary codecs (see ephemeris.go), renaming a key is a breaking
*          change. Values are stored as 64-bit floats, integral fields are
*          rounded on read. Health words additionally carry the flag family
*          they must be interpreted with, which depends on the constellation
*          and message revision that produced the record.
*-----------------------------------------------------------------------------*/

package rinex

import "math"

/* interpretation of an orbital parameter */
type OrbitKind int

const (
	KIND_F64                OrbitKind = iota /* plain 64-bit float */
	KIND_U32                                 /* unsigned counter (week, iode, iodc) */
	KIND_I8                                  /* small signed integer (glonass channel) */
	KIND_HEALTH_GPS_QZS                      /* GPS/QZSS L1/L2/L5 health word */
	KIND_HEALTH_GPS_QZS_L1C                  /* GPS/QZSS L1C health bits */
	KIND_HEALTH_GLO                          /* GLONASS health word */
	KIND_HEALTH2_GLO                         /* GLONASS almanac health bits */
	KIND_HEALTH_GEO                          /* SBAS/GEO health word */
	KIND_HEALTH_BDS_SATH1                    /* BeiDou SatH1 bit */
	KIND_HEALTH_BDS                          /* BeiDou modern health state */
)

/* modern BeiDou health states (RINEX V4 messages) */
type BdsHealth int

const (
	BDS_HEALTHY           BdsHealth = 0 /* suitable for navigation */
	BDS_UNHEALTHY         BdsHealth = 1 /* unsuitable */
	BDS_UNHEALTHY_TESTING BdsHealth = 2 /* under test, unsuitable */
)

const (
	GPS_QZS_L1C_UNHEALTHY = 0x01 /* GPS/QZSS L1C unhealthy bit */
	BDS_SATH1_UNHEALTHY   = 0x01 /* BeiDou SatH1 unhealthy bit */
	GLO_HEALTHY_ALMANAC   = 0x01 /* GLONASS health2 healthy-almanac bit */
)

/* OrbitItem is one typed value of the orbital parameter store ----------------*/
type OrbitItem struct {
	Kind  OrbitKind
	Value float64
}

func F64Item(value float64) OrbitItem {
	return OrbitItem{Kind: KIND_F64, Value: value}
}

func U32Item(value uint32) OrbitItem {
	return OrbitItem{Kind: KIND_U32, Value: float64(value)}
}

func I8Item(value int8) OrbitItem {
	return OrbitItem{Kind: KIND_I8, Value: float64(value)}
}

/* health items, tagged with the flag family of the producing message ---------*/
func GpsQzssHealthItem(word uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_GPS_QZS, Value: float64(word)}
}

func GpsQzssL1cHealthItem(bits uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_GPS_QZS_L1C, Value: float64(bits)}
}

func GlonassHealthItem(word uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_GLO, Value: float64(word)}
}

func GlonassHealth2Item(bits uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH2_GLO, Value: float64(bits)}
}

func GeoHealthItem(word uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_GEO, Value: float64(word)}
}

func BdsSatH1Item(bit uint32) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_BDS_SATH1, Value: float64(bit)}
}

func BdsHealthItem(state BdsHealth) OrbitItem {
	return OrbitItem{Kind: KIND_HEALTH_BDS, Value: float64(state)}
}

/* AsF64 is always feasible, whatever the inner interpretation ----------------*/
func (item OrbitItem) AsF64() float64 {
	return item.Value
}

func (item OrbitItem) AsU32() uint32 {
	return uint32(math.Round(item.Value))
}

func (item OrbitItem) AsI8() int8 {
	return int8(math.Round(item.Value))
}

/* flag views: ok is false when the item belongs to another flag family -------*/

func (item OrbitItem) AsGpsQzssHealth() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH_GPS_QZS
}

func (item OrbitItem) AsGpsQzssL1cHealth() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH_GPS_QZS_L1C
}

func (item OrbitItem) AsGlonassHealth() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH_GLO
}

func (item OrbitItem) AsGlonassHealth2() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH2_GLO
}

func (item OrbitItem) AsGeoHealth() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH_GEO
}

func (item OrbitItem) AsBdsSatH1() (uint32, bool) {
	return item.AsU32(), item.Kind == KIND_HEALTH_BDS_SATH1
}

func (item OrbitItem) AsBdsHealth() (BdsHealth, bool) {
	return BdsHealth(item.AsU32()), item.Kind == KIND_HEALTH_BDS
}
