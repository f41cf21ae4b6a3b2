/*------------------------------------------------------------------------------
* consts.go : physical and algorithmic constants for broadcast navigation
*
* references :
*     [1] IS-GPS-200K, Navstar GPS Space Segment/Navigation User Interfaces,
*         May 6, 2019
*     [2] Global Navigation Satellite System GLONASS, Interface Control Document
*         Navigational radiosignal In bands L1, L2, (Version 5.1), 2008
*     [3] European GNSS (Galileo) Open Service Signal In Space Interface Control
*         Document, Issue 1.3, December, 2016
*     [4] BeiDou navigation satellite system signal in space interface control
*         document open service signal B1I (version 3.0), China Satellite
*         Navigation office, February, 2019
*     [5] Quasi-Zenith Satellite System Interface Specification (IS-QZSS-PNT-003),
*         Cabinet Office, November 5, 2018
*-----------------------------------------------------------------------------*/

package rinex

const (
	PI     = 3.1415926535897932 /* pi */
	D2R    = PI / 180.0         /* deg to rad */
	R2D    = 180.0 / PI         /* rad to deg */
	CLIGHT = 299792458.0        /* speed of light (m/s) */

	RE_WGS84 = 6378137.0           /* earth semimajor axis (WGS84) (m) */
	FE_WGS84 = 1.0 / 298.257223563 /* earth flattening (WGS84) */

	MU_GPS = 3.9860050e14   /* gravitational constant         ref [1] */
	MU_GLO = 3.9860044e14   /* gravitational constant         ref [2] */
	MU_GAL = 3.986004418e14 /* earth gravitational constant   ref [3] */
	MU_CMP = 3.986004418e14 /* earth gravitational constant   ref [4] */

	OMGE_GPS = 7.2921151467e-5 /* earth angular velocity (rad/s) ref [1] */
	OMGE_GLO = 7.292115e-5     /* earth angular velocity (rad/s) ref [2] */
	OMGE_GAL = 7.2921151467e-5 /* earth angular velocity (rad/s) ref [3] */
	OMGE_CMP = 7.292115e-5     /* earth angular velocity (rad/s) ref [4] */

	/* relativistic clock factor -2*sqrt(mu)/c^2 (s/sqrt(m)) */
	F_REL_GPS = -4.44280763339306e-10   /* ref [1] */
	F_REL_GAL = -4.4428073090439775e-10 /* ref [3] */
	F_REL_CMP = -4.4428073090439775e-10 /* ref [4] */

	RTOL_KEPLER = 1e-10 /* tolerance of kepler iteration (rad) */

	MAXDTOE     = 7200.0   /* max time difference to GPS toe (s) */
	MAXDTOE_QZS = 7200.0   /* max time difference to QZSS toe (s) */
	MAXDTOE_GAL = 10800.0  /* max time difference to Galileo toe (s) */
	MAXDTOE_CMP = 21600.0  /* max time difference to BeiDou toe (s) */
	MAXDTOE_IRN = 7200.0   /* max time difference to IRNSS toe (s) */
	MAXDTOE_GLO = 1800.0   /* max time difference to GLONASS toe (s) */
	MAXDTOE_SBS = 108000.0 /* max time difference to SBAS t0 (s), 1.25 days
	   to tolerate one frame per 24h data file */
)
