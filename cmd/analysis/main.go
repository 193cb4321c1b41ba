//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Krox/math/factor"
	"github.com/Krox/math/multfunc"
	"github.com/Krox/math/primes"
	"github.com/Krox/math/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type summaryStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis_excess"`
}

type report struct {
	Lo         int64                   `json:"lo"`
	Hi         int64                   `json:"hi"`
	PrimeCount int                     `json:"prime_count"`
	Mertens    int64                   `json:"mertens"`
	Series     map[string]summaryStats `json:"series"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[n-1]
	median := quantileSorted(cp, 0.5)
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2, m3, m4 float64
	for _, v := range x {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	var std float64
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	var skew, kurtEx float64
	if std > 0 {
		m2n := m2 / float64(n)
		m3n := m3 / float64(n)
		m4n := m4 / float64(n)
		skew = m3n / math.Pow(m2n, 1.5)
		kurtEx = m4n/m2n/m2n - 3.0
	}
	return summaryStats{
		Count: n, Mean: m, Std: std,
		Min: minv, Q1: q1, Median: median, Q3: q3, Max: maxv, IQR: q3 - q1,
		Skewness: skew, Kurtosis: kurtEx,
	}
}

func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

// freedmanDiaconisBins picks a bin count from the interquartile range,
// clamped to a window that renders well for number-theoretic series.
func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	iqr := quantileSorted(cp, 0.75) - quantileSorted(cp, 0.25)
	r := cp[n-1] - cp[0]
	if iqr == 0 || r == 0 {
		if k := int(r) + 1; k > 1 && k < 200 {
			return k
		}
		return 50
	}
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	k := int(math.Ceil(r / bw))
	if k < 20 {
		k = 20
	}
	if k > 400 {
		k = 400
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

// ------------------------------- collection ---------------------------------

type sweepData struct {
	totientRatio []float64
	divisorCount []float64
	primeGaps    []float64
	moebius      []float64
	mertensX     []int64
	mertensY     []int64
	primeCount   int
	mertens      int64
}

func collect(lo, hi int64) *sweepData {
	defer prof.Track(time.Now(), "collect")
	cache := primes.New()
	fz := factor.New(cache)
	phi := multfunc.Totient(fz)
	moeb := multfunc.Moebius(fz)
	dcount := multfunc.DivisorCount(fz)

	data := &sweepData{}
	span := hi - lo
	step := span / 2000
	if step < 1 {
		step = 1
	}
	for n := lo; n < hi; n++ {
		data.totientRatio = append(data.totientRatio, float64(phi.Eval(n))/float64(n))
		data.divisorCount = append(data.divisorCount, float64(dcount.Eval(n)))
		m := moeb.Eval(n)
		data.moebius = append(data.moebius, float64(m))
		data.mertens += m
		if (n-lo)%step == 0 || n == hi-1 {
			data.mertensX = append(data.mertensX, n)
			data.mertensY = append(data.mertensY, data.mertens)
		}
	}
	ps := cache.Range(lo, hi-1)
	data.primeCount = len(ps)
	for i := 1; i < len(ps); i++ {
		data.primeGaps = append(data.primeGaps, float64(ps[i]-ps[i-1]))
	}
	return data
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.2f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.4f, std=%.4f, median=%.4f, IQR=%.4f",
		stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func newMertensChart(xs, sums []int64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mertens function",
			Subtitle: fmt.Sprintf("running sum of the Moebius function, final value %d", sums[len(sums)-1]),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Mertens function", Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	labels := make([]string, len(xs))
	items := make([]opts.LineData, len(sums))
	for i := range xs {
		labels[i] = fmt.Sprintf("%d", xs[i])
		items[i] = opts.LineData{Value: sums[i]}
	}
	line.SetXAxis(labels).AddSeries("M(n)", items)
	return line
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	lo := flag.Int64("lo", 2, "lower end of the sweep (inclusive)")
	hi := flag.Int64("hi", 200000, "upper end of the sweep (exclusive)")
	outDir := flag.String("out", "Reports", "output directory for reports")
	flag.Parse()

	if *lo < 1 || *hi <= *lo {
		log.Fatalf("bad range [%d, %d)", *lo, *hi)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	log.Printf("[analysis] sweeping [%d, %d)", *lo, *hi)
	data := collect(*lo, *hi)

	statsStart := time.Now()
	rep := report{
		Lo: *lo, Hi: *hi,
		PrimeCount: data.primeCount,
		Mertens:    data.mertens,
		Series: map[string]summaryStats{
			"totient_ratio": computeStats(data.totientRatio),
			"divisor_count": computeStats(data.divisorCount),
			"prime_gap":     computeStats(data.primeGaps),
			"moebius":       computeStats(data.moebius),
		},
	}
	prof.Track(statsStart, "stats")

	chartStart := time.Now()
	page := components.NewPage()
	add := func(name, key string, vals []float64) {
		if len(vals) == 0 {
			return
		}
		page.AddCharts(newHistogramChart(name, vals, rep.Series[key]))
	}
	add("totient ratio phi(n)/n", "totient_ratio", data.totientRatio)
	add("divisor count d(n)", "divisor_count", data.divisorCount)
	add("prime gaps", "prime_gap", data.primeGaps)
	page.AddCharts(newMertensChart(data.mertensX, data.mertensY))
	prof.Track(chartStart, "charts")

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("number_stats_%s.json", ts))
	if err := saveJSON(jsonPath, rep); err != nil {
		log.Printf("warn: save stats: %v", err)
	}
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("number_charts_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}

	fmt.Printf("[timing] sweep stages:\n")
	for _, s := range prof.SnapshotAndReset() {
		fmt.Printf("  %-10s %5d calls  total %v  mean %v\n", s.Label, s.Count, s.Total, s.Mean())
	}
	fmt.Println("Charts page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
