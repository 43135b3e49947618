package stats

// Interval is a two-sided confidence interval
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"` // e.g. 0.95
}

// Contains reports whether v falls inside the interval
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// Width returns the interval's length
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// ATEEstimate is a difference-of-means average treatment effect estimate with
// its independent two-sample pooled-variance t-test. Degrees of freedom are
// n1 + n2 - 2; the groups need not be equal-sized.
type ATEEstimate struct {
	Estimate    float64  `json:"estimate"`
	StdErr      float64  `json:"std_err"`
	TStatistic  float64  `json:"t_statistic"`
	PValue      float64  `json:"p_value"`
	DF          float64  `json:"df"`
	CI          Interval `json:"ci"`
	TreatedN    int      `json:"treated_n"`
	ControlN    int      `json:"control_n"`
	TreatedMean float64  `json:"treated_mean"`
	ControlMean float64  `json:"control_mean"`
}

// Coefficient is one fitted regression term
type Coefficient struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	StdErr     float64 `json:"std_err"`
	TStatistic float64 `json:"t_statistic"`
	PValue     float64 `json:"p_value"`
}

// RegressionFit is an ordinary least squares fit over an explicit design
// matrix. Coefficients follow design-column order (intercept first when
// present).
type RegressionFit struct {
	Coefficients []Coefficient `json:"coefficients"`
	Residual     float64       `json:"residual_std_err"`
	DF           int           `json:"df"`
	N            int           `json:"n"`
}

// Coefficient looks up a fitted term by its design-column name
func (f RegressionFit) Coefficient(name string) (Coefficient, bool) {
	for _, c := range f.Coefficients {
		if c.Name == name {
			return c, true
		}
	}
	return Coefficient{}, false
}
