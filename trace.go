/*------------------------------------------------------------------------------
* trace.go : debug trace functions
*
* notes  : traces are off until TraceOpen()/TraceLevel() are called, the
*          engine hot path only pays a level comparison. Level 1 is errors,
*          2 warnings, 3 selection decisions, 4 per-resolution summaries,
*          5 solver internals.
*-----------------------------------------------------------------------------*/

package rinex

import (
	"fmt"
	"os"
)

var (
	fp_trace    *os.File
	level_trace int
)

/* open trace file, empty path traces to stderr ------------------------------*/
func TraceOpen(file string) {
	if len(file) == 0 {
		fp_trace = os.Stderr
		return
	}
	fp, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace open failed, err:%s\n", err)
		fp_trace = os.Stderr
		return
	}
	fp_trace = fp
}

/* close trace file ----------------------------------------------------------*/
func TraceClose() {
	if fp_trace != nil && fp_trace != os.Stderr {
		fp_trace.Close()
	}
	fp_trace = nil
}

/* set trace level -----------------------------------------------------------*/
func TraceLevel(level int) {
	level_trace = level
}

/* output trace record -------------------------------------------------------*/
func Trace(level int, format string, v ...interface{}) {
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d ", level)
	fmt.Fprintf(fp_trace, format, v...)
}
