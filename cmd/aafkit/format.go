package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aafkit/internal/aaf/types"
	"aafkit/internal/textutil"
)

func yesNo(value bool) string {
	return textutil.Ternary(value, "yes", "no")
}

// titleLabel capitalizes enum text such as track kinds for table output.
func titleLabel(value string) string {
	return cases.Title(language.English).String(value)
}

func formatRate(r types.Rational) string {
	if r.Denominator == 0 {
		return "-"
	}
	if r.Denominator == 1 {
		return strconv.Itoa(int(r.Numerator))
	}
	return fmt.Sprintf("%.3f", r.Float64())
}

// formatDuration renders count edit units of rate as wall-clock time.
func formatDuration(count int64, rate types.Rational) string {
	if rate.Numerator == 0 {
		return "-"
	}
	seconds := float64(count) * float64(rate.Denominator) / float64(rate.Numerator)
	d := time.Duration(seconds * float64(time.Second))
	return d.Round(time.Millisecond).String()
}

func formatStamp(ts types.TimeStamp) string {
	if ts == (types.TimeStamp{}) {
		return "-"
	}
	return ts.Time().Format("2006-01-02 15:04:05")
}

func formatBytes(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

// formatTimecode renders an absolute frame count as HH:MM:SS:FF. Drop-frame
// timecode uses ';' before the frame field and skips the dropped labels.
func formatTimecode(frames int64, fps uint16, drop bool) string {
	if fps == 0 {
		return strconv.FormatInt(frames, 10)
	}
	rate := int64(fps)
	if drop && rate%30 == 0 {
		frames = dropFrameLabel(frames, rate)
	}
	ff := frames % rate
	total := frames / rate
	sep := textutil.Ternary(drop, ";", ":")
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", total/3600, (total/60)%60, total%60, sep, ff)
}

// dropFrameLabel maps a frame count onto the label count that skips the
// first frames of every minute except each tenth.
func dropFrameLabel(frames, rate int64) int64 {
	dropped := rate / 15
	perTenMinutes := rate*600 - dropped*9
	perMinute := rate*60 - dropped
	tens := frames / perTenMinutes
	rest := frames % perTenMinutes
	frames += dropped * 9 * tens
	if rest > dropped {
		frames += dropped * ((rest - dropped) / perMinute)
	}
	return frames
}
