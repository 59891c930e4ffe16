package ranking

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
)

// Policy selects how PriceToValue maps a price that is not a calibration point.
type Policy string

const (
	// PolicyInterpolate interpolates linearly between the bounding points and
	// clamps to the nearest endpoint outside the curve's range.
	PolicyInterpolate Policy = "interpolate"
	// PolicyBounded interpolates inside the range and rejects prices outside it.
	PolicyBounded Policy = "bounded"
	// PolicyNearest takes the value of the closest point; ties go to the
	// cheaper point.
	PolicyNearest Policy = "nearest"
	// PolicyExact accepts calibration prices only.
	PolicyExact Policy = "exact"

	DefaultPolicy = PolicyInterpolate
)

func (p Policy) String() string {
	return string(p)
}

// ParsePolicy converts a config or flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "interpolate":
		return PolicyInterpolate, nil
	case "bounded":
		return PolicyBounded, nil
	case "nearest":
		return PolicyNearest, nil
	case "exact":
		return PolicyExact, nil
	default:
		return "", fmt.Errorf("invalid curve policy %q: must be interpolate, bounded, nearest, or exact", s)
	}
}

// Curve is a price-to-value calibration curve sorted by ascending price.
type Curve struct {
	points []PricePoint
}

// NewCurve sorts points by price and checks them. Repeated prices with the
// same score are collapsed; repeated prices with different scores are a
// DataFormatError. A score that rises with price is logged but accepted.
func NewCurve(points []PricePoint) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, &DataFormatError{Source: "price curve", Field: "sat_noon_price_usd", Reason: "curve has no points"}
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b PricePoint) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	})

	out := sorted[:1]
	for _, pt := range sorted[1:] {
		last := out[len(out)-1]
		if pt.Price == last.Price {
			if pt.ValueScore != last.ValueScore {
				return Curve{}, &DataFormatError{
					Source: "price curve",
					Field:  "value_score",
					Value:  fmt.Sprintf("%g", pt.ValueScore),
					Reason: fmt.Sprintf("price %g already maps to %g", pt.Price, last.ValueScore),
				}
			}
			continue
		}
		if pt.ValueScore > last.ValueScore {
			slog.Warn("price curve: value score rises with price",
				"price", pt.Price, "value_score", pt.ValueScore,
				"previous_price", last.Price, "previous_value_score", last.ValueScore)
		}
		out = append(out, pt)
	}

	return Curve{points: out}, nil
}

// Points returns a copy of the curve's calibration points.
func (c Curve) Points() []PricePoint {
	return slices.Clone(c.points)
}

// Len returns the number of distinct calibration points.
func (c Curve) Len() int {
	return len(c.points)
}

// Range returns the lowest and highest calibrated price.
func (c Curve) Range() (lo, hi float64) {
	if len(c.points) == 0 {
		return 0, 0
	}
	return c.points[0].Price, c.points[len(c.points)-1].Price
}

// Value maps price to a value score under policy. A price equal to a
// calibration point always returns that point's score.
func (c Curve) Value(price float64, policy Policy) (float64, error) {
	pts := c.points
	n := len(pts)
	if n == 0 {
		return 0, &UnmappedPriceError{Price: price, Policy: policy}
	}

	i := sort.Search(n, func(i int) bool { return pts[i].Price >= price })
	if i < n && pts[i].Price == price {
		return pts[i].ValueScore, nil
	}

	lo, hi := c.Range()
	unmapped := &UnmappedPriceError{Price: price, Min: lo, Max: hi, Policy: policy}

	switch policy {
	case PolicyExact:
		return 0, unmapped

	case PolicyNearest:
		if i == 0 {
			return pts[0].ValueScore, nil
		}
		if i == n {
			return pts[n-1].ValueScore, nil
		}
		below, above := pts[i-1], pts[i]
		if price-below.Price <= above.Price-price {
			return below.ValueScore, nil
		}
		return above.ValueScore, nil

	case PolicyInterpolate, PolicyBounded:
		if i == 0 || i == n {
			if policy == PolicyBounded {
				return 0, unmapped
			}
			if i == 0 {
				return pts[0].ValueScore, nil
			}
			return pts[n-1].ValueScore, nil
		}
		below, above := pts[i-1], pts[i]
		t := (price - below.Price) / (above.Price - below.Price)
		return below.ValueScore + t*(above.ValueScore-below.ValueScore), nil

	default:
		return 0, fmt.Errorf("unknown curve policy %q", policy)
	}
}

// PriceToValue maps price to a value score against curve under policy.
func PriceToValue(price float64, curve Curve, policy Policy) (float64, error) {
	return curve.Value(price, policy)
}
