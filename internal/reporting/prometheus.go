package reporting

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/njgolf/golfrank/internal/ranking"
)

// MetricPrefix namespaces every exported gauge.
const MetricPrefix = "golfrank_"

type gaugeSpec struct {
	name  string
	help  string
	value func(ranking.CourseRecord) float64
}

var gaugeSpecs = []gaugeSpec{
	{"composite_score", "Final ranking key combining golf quality and value quality (1-10).",
		func(r ranking.CourseRecord) float64 { return r.CompositeScore }},
	{"golf_quality", "Mean of the layout, difficulty and conditions ratings (1-10).",
		func(r ranking.CourseRecord) float64 { return r.GolfQuality }},
	{"value_score", "Value score derived from the Saturday noon price (1-10).",
		func(r ranking.CourseRecord) float64 { return r.ValueScore }},
	{"value_quality", "Blend of golf quality and value score (1-10).",
		func(r ranking.CourseRecord) float64 { return r.ValueQuality }},
	{"rank_position", "Position in the ranking, 1 is best.",
		func(r ranking.CourseRecord) float64 { return float64(r.RankPosition) }},
	{"sat_noon_price_usd", "Observed Saturday noon green fee in USD.",
		func(r ranking.CourseRecord) float64 { return r.Price }},
}

// MetricFamilies converts ranked records into one gauge family per score,
// labelled by course and county. No families are produced for no records.
func MetricFamilies(records []ranking.CourseRecord) []*dto.MetricFamily {
	if len(records) == 0 {
		return nil
	}

	families := make([]*dto.MetricFamily, 0, len(gaugeSpecs))
	for _, gauge := range gaugeSpecs {
		mf := &dto.MetricFamily{
			Name: proto.String(MetricPrefix + gauge.name),
			Help: proto.String(gauge.help),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, r := range records {
			mf.Metric = append(mf.Metric, &dto.Metric{
				Label: []*dto.LabelPair{
					{Name: proto.String("course"), Value: proto.String(r.Course)},
					{Name: proto.String("county"), Value: proto.String(r.County)},
				},
				Gauge: &dto.Gauge{Value: proto.Float64(gauge.value(r))},
			})
		}
		families = append(families, mf)
	}
	return families
}

// WritePrometheus writes records in the Prometheus text exposition format,
// suitable for a node exporter textfile collector.
func WritePrometheus(w io.Writer, records []ranking.CourseRecord) error {
	for _, mf := range MetricFamilies(records) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
