//---------------------------------------------------------------------------
// orbplot : broadcast orbit resolution and export ap
//
// options : orbplot [option]... file [file...]
//
//           -ts ds,ts start day/time (ds=y/m/d ts=h:m:s)
//           -te de,te end day/time   (de=y/m/d te=h:m:s)
//           -ti tint  resolution interval (sec)
//           -sat list satellites to resolve ("G10,E30,C05"), default all
//           -pos x,y,z ground position (km, earth fixed) for az/el export
//           -influx url  InfluxDB server base URL
//           -token tok   InfluxDB authentication token
//           -org org     InfluxDB organization
//           -bucket bkt  InfluxDB bucket
//           -push url    Prometheus pushgateway URL
//           -x level     debug trace level (0:off)
//           file         navigation record files (JSON)
//---------------------------------------------------------------------------
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	influxdb "github.com/influxdata/influxdb-client-go/v2"
	"github.com/nav-solutions/rinex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const PROGNAME = "orbplot"

/* help text -----------------------------------------------------------------*/
var help []string = []string{
	"",
	" usage: orbplot [option]... file file [...]",
	"",
	" Read navigation record files, resolve satellite orbits and clocks and",
	" export the states to InfluxDB and a Prometheus pushgateway.",
	"",
	" -ts ds,ts start day/time (ds=y/m/d ts=h:m:s) [first toc]",
	" -te de,te end day/time   (de=y/m/d te=h:m:s) [last toc]",
	" -ti tint  resolution interval (sec) [30]",
	" -sat list satellites to resolve (\"G10,E30\") [all]",
	" -pos x,y,z ground position (km, ecef) for az/el export [off]",
	" -influx url InfluxDB server base URL [http://localhost:8086]",
	" -token tok  InfluxDB authentication token []",
	" -org org    InfluxDB organization [gnss]",
	" -bucket bkt InfluxDB bucket [orbits]",
	" -push url   Prometheus pushgateway URL [off]",
	" -x level  debug trace level (0:off) [0]"}

func searchHelp(key string) string {
	for _, v := range help {
		if strings.Contains(v, key) {
			return v
		}
	}
	return "no supported argument"
}

/* show message --------------------------------------------------------------*/
func showmsg(format string, v ...interface{}) int {
	fmt.Fprintf(os.Stderr, format, v...)
	fmt.Fprintf(os.Stderr, "\n")
	return 0
}

/* navigation record as stored in the input files -----------------------------*/
type navRecordJSON struct {
	Satellite string             `json:"satellite"` /* "G10" style */
	Toc       string             `json:"toc"`       /* y/m/d,h:m:s */
	Scale     string             `json:"timescale"` /* GPST,GST,BDT,QZSST,UTC */
	Bias      float64            `json:"clockBias"`
	Drift     float64            `json:"clockDrift"`
	DriftRate float64            `json:"clockDriftRate"`
	Orbits    map[string]float64 `json:"orbits"`
}

var scales = map[string]rinex.TimeScale{
	"GPST": rinex.TS_GPST, "GST": rinex.TS_GST, "BDT": rinex.TS_BDT,
	"QZSST": rinex.TS_QZSST, "UTC": rinex.TS_UTC,
}

func parseCalendar(s string) ([]float64, error) {
	es := []float64{2000, 1, 1, 0, 0, 0}
	n, _ := fmt.Sscanf(s, "%f/%f/%f,%f:%f:%f", &es[0], &es[1], &es[2], &es[3], &es[4], &es[5])
	if n < 6 {
		return nil, fmt.Errorf("invalid day/time %q", s)
	}
	return es, nil
}

/* read navigation record files into a collection ------------------------------*/
func readNav(files []string) (*rinex.Nav, []rinex.SV, error) {
	nav := rinex.NewNav()
	seen := make(map[rinex.SV]bool)
	var sats []rinex.SV

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, err
		}
		var recs []navRecordJSON
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", file, err)
		}
		for _, rec := range recs {
			sv, err := rinex.ParseSV(rec.Satellite)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", file, err)
			}
			ts, ok := scales[rec.Scale]
			if !ok {
				return nil, nil, fmt.Errorf("%s: unknown timescale %q", file, rec.Scale)
			}
			es, err := parseCalendar(rec.Toc)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", file, err)
			}
			eph := rinex.NewEphemeris(rec.Bias, rec.Drift, rec.DriftRate)
			for field, value := range rec.Orbits {
				eph.SetOrbitF64(field, value)
			}
			nav.Add(rinex.NavKey{
				Epoch:     rinex.NewEpoch(es, ts),
				Satellite: sv,
				FrameType: rinex.FRAME_EPHEMERIS,
				MsgType:   rinex.MSG_LNAV,
			}, eph)
			if !seen[sv] {
				seen[sv] = true
				sats = append(sats, sv)
			}
		}
	}
	return nav, sats, nil
}

/* time flag, teacher-ware day/time syntax -------------------------------------*/
type timeFlag struct {
	epoch      *rinex.Epoch
	configured bool
}

func (f *timeFlag) Set(s string) error {
	es, err := parseCalendar(s)
	if err != nil {
		return err
	}
	*(f.epoch) = rinex.NewEpoch(es, rinex.TS_GPST)
	f.configured = true
	return nil
}

func (f *timeFlag) String() string {
	return "2000/1/1,0:0:0"
}

/* ground position flag, km ecef -----------------------------------------------*/
type posFlag struct {
	pos        *rinex.Vector3
	configured bool
}

func (f *posFlag) Set(s string) error {
	n, _ := fmt.Sscanf(s, "%f,%f,%f", &f.pos[0], &f.pos[1], &f.pos[2])
	if n < 3 {
		return fmt.Errorf("invalid position %q", s)
	}
	f.configured = true
	return nil
}

func (f *posFlag) String() string {
	return "0,0,0"
}

/* export resolved states to influxdb -------------------------------------------*/
func exportInflux(url, token, org, bucket string, states []*rinex.OrbitalState, clocks []float64) {
	client := influxdb.NewClient(url, token)
	writeAPI := client.WriteAPI(org, bucket)

	for i, st := range states {
		timeObj := time.Unix(st.Epoch.Time.Time, 0)
		p := influxdb.NewPointWithMeasurement("orbit").
			AddTag("satellite", st.Satellite.String()).
			AddField("x", st.PosVelKm[0]).
			AddField("y", st.PosVelKm[1]).
			AddField("z", st.PosVelKm[2]).
			AddField("vx", st.PosVelKm[3]).
			AddField("vy", st.PosVelKm[4]).
			AddField("vz", st.PosVelKm[5]).
			AddField("clock", clocks[i]).
			SetTime(timeObj)
		writeAPI.WritePoint(p)
	}
	writeAPI.Flush()
	client.Close()
}

/* push resolution counters to the pushgateway ----------------------------------*/
func pushMetrics(url string, resolved, failed int) {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orbplot_resolved_states",
			Help: "resolved and failed orbital state counts",
		},
		[]string{"outcome"},
	)
	gauge.WithLabelValues("resolved").Set(float64(resolved))
	gauge.WithLabelValues("failed").Set(float64(failed))

	if err := push.New(url, "orbplot").Collector(gauge).Push(); err != nil {
		showmsg("could not push metrics to pushgateway: %v", err)
	}
}

func main() {
	var (
		ts, te    rinex.Epoch
		rxPos     rinex.Vector3
		tint      float64 = 30.0
		satList   string
		influxURL string = "http://localhost:8086"
		token     string
		org       string = "gnss"
		bucket    string = "orbits"
		pushURL   string
		level     int
	)

	tsf := &timeFlag{epoch: &ts}
	tef := &timeFlag{epoch: &te}
	posf := &posFlag{pos: &rxPos}

	flag.Var(tsf, "ts", searchHelp("-ts"))
	flag.Var(tef, "te", searchHelp("-te"))
	flag.Float64Var(&tint, "ti", tint, searchHelp("-ti"))
	flag.StringVar(&satList, "sat", "", searchHelp("-sat"))
	flag.Var(posf, "pos", searchHelp("-pos"))
	flag.StringVar(&influxURL, "influx", influxURL, searchHelp("-influx"))
	flag.StringVar(&token, "token", token, searchHelp("-token"))
	flag.StringVar(&org, "org", org, searchHelp("-org"))
	flag.StringVar(&bucket, "bucket", bucket, searchHelp("-bucket"))
	flag.StringVar(&pushURL, "push", "", searchHelp("-push"))
	flag.IntVar(&level, "x", 0, searchHelp("-x"))

	flag.Parse()

	infiles := flag.CommandLine.Args()
	if len(infiles) < 1 {
		for _, h := range help {
			fmt.Printf("%s\n", h)
		}
		return
	}

	if level > 0 {
		rinex.TraceOpen(fmt.Sprintf("%s.trace", PROGNAME))
		rinex.TraceLevel(level)
		defer rinex.TraceClose()
	}

	nav, sats, err := readNav(infiles)
	if err != nil {
		showmsg("read navigation data failed: %v", err)
		os.Exit(1)
	}
	showmsg("read %d navigation records", nav.N())

	if satList != "" {
		sats = sats[:0]
		for _, id := range strings.Split(satList, ",") {
			sv, err := rinex.ParseSV(id)
			if err != nil {
				showmsg("%v", err)
				os.Exit(1)
			}
			sats = append(sats, sv)
		}
	}
	if !tsf.configured || !tef.configured {
		showmsg("both -ts and -te are required")
		os.Exit(1)
	}

	var (
		states   []*rinex.OrbitalState
		clocks   []float64
		almanac  rinex.WGS84Almanac
		resolved int
		failed   int
	)
	for epoch := ts; epoch.Sub(te) <= 0.0; epoch = epoch.Add(tint) {
		for _, sv := range sats {
			state, err := nav.ResolveOrbitalState(sv, epoch, 30)
			if err != nil {
				failed++
				continue
			}
			clock, err := nav.ResolveClockCorrectionSec(sv, epoch, 2)
			if err != nil {
				failed++
				continue
			}
			states = append(states, state)
			clocks = append(clocks, clock)
			resolved++

			if posf.configured {
				aer, err := nav.ResolveAzimuthElevationRange(almanac, sv, epoch, rxPos, 30)
				if err == nil {
					rinex.Trace(4, "orbplot: %s az=%.1f el=%.1f r=%.1f\n",
						sv, aer.AzimuthRad*rinex.R2D, aer.ElevationRad*rinex.R2D, aer.RangeKm)
				}
			}
		}
	}
	showmsg("resolved %d states, %d failures", resolved, failed)

	exportInflux(influxURL, token, org, bucket, states, clocks)
	if pushURL != "" {
		pushMetrics(pushURL, resolved, failed)
	}
}
