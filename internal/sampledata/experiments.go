// Package sampledata ships canned experiments for demos and smoke testing.
// The shapes are identical to user-entered data; nothing here is persisted.
package sampledata

import (
	"math/rand"

	"goab/domain/experiment"
)

// revenueSeed keeps the generated continuous dataset reproducible run to run.
const revenueSeed = 42

var catalog = []experiment.Experiment{
	{
		ID:          "checkout_button_color",
		Name:        "Checkout Button Color Test",
		Description: "Testing red vs blue checkout button for conversion rate",
		Status:      experiment.StatusCompleted,
		Metric:      experiment.MetricConversionRate,
		StartDate:   "2024-01-15",
		EndDate:     "2024-02-15",
		ControlName: "Blue Button (Control)",
		TestName:    "Red Button (Test)",
		Trial: experiment.ProportionTrial{
			Control: experiment.ProportionSample{Conversions: 487, Visitors: 5420},
			Test:    experiment.ProportionSample{Conversions: 534, Visitors: 5380},
		},
	},
	{
		ID:          "email_subject_line",
		Name:        "Email Subject Line Test",
		Description: "Testing personalized vs generic email subject lines",
		Status:      experiment.StatusCompleted,
		Metric:      experiment.MetricConversionRate,
		StartDate:   "2024-02-01",
		EndDate:     "2024-02-28",
		ControlName: "Generic Subject (Control)",
		TestName:    "Personalized Subject (Test)",
		Trial: experiment.ProportionTrial{
			Control: experiment.ProportionSample{Conversions: 875, Visitors: 12500},
			Test:    experiment.ProportionSample{Conversions: 1023, Visitors: 12480},
		},
	},
	{
		ID:          "landing_page_layout",
		Name:        "Landing Page Layout Test",
		Description: "Testing single-column vs two-column layout",
		Status:      experiment.StatusRunning,
		Metric:      experiment.MetricConversionRate,
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-31",
		ControlName: "Single Column (Control)",
		TestName:    "Two Column (Test)",
		Trial: experiment.ProportionTrial{
			Control: experiment.ProportionSample{Conversions: 256, Visitors: 3200},
			Test:    experiment.ProportionSample{Conversions: 235, Visitors: 3180},
		},
	},
	{
		ID:          "pricing_strategy",
		Name:        "Pricing Strategy Test",
		Description: "Testing $9.99 vs $10.00 pricing",
		Status:      experiment.StatusCompleted,
		Metric:      experiment.MetricConversionRate,
		StartDate:   "2024-02-15",
		EndDate:     "2024-03-15",
		ControlName: "$10.00 (Control)",
		TestName:    "$9.99 (Test)",
		Trial: experiment.ProportionTrial{
			Control: experiment.ProportionSample{Conversions: 623, Visitors: 8900},
			Test:    experiment.ProportionSample{Conversions: 708, Visitors: 8850},
		},
	},
	{
		ID:          "mobile_onboarding",
		Name:        "Mobile App Onboarding Test",
		Description: "Testing 3-step vs 5-step onboarding process",
		Status:      experiment.StatusCompleted,
		Metric:      experiment.MetricConversionRate,
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		ControlName: "5-Step Onboarding (Control)",
		TestName:    "3-Step Onboarding (Test)",
		Trial: experiment.ProportionTrial{
			Control: experiment.ProportionSample{Conversions: 2340, Visitors: 15600},
			Test:    experiment.ProportionSample{Conversions: 2804, Visitors: 15580},
		},
	},
}

// Experiments returns the full sample catalog. Callers get a copy; the
// catalog itself is never handed out for mutation.
func Experiments() []experiment.Experiment {
	out := make([]experiment.Experiment, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks up one sample experiment by id.
func Get(id string) (experiment.Experiment, bool) {
	for _, exp := range catalog {
		if string(exp.ID) == id {
			return exp, true
		}
	}
	return experiment.Experiment{}, false
}

// RevenueTrial generates the continuous-metric demo dataset: revenue per user
// for two arms, control around $25 and test around $28, truncated at zero.
// The seed is fixed so repeated calls produce identical samples.
func RevenueTrial() (experiment.ContinuousTrial, string) {
	rng := rand.New(rand.NewSource(revenueSeed))

	draw := func(n int, mean, sd float64) experiment.ContinuousSample {
		s := make(experiment.ContinuousSample, n)
		for i := range s {
			v := rng.NormFloat64()*sd + mean
			if v < 0 {
				v = 0
			}
			s[i] = v
		}
		return s
	}

	trial := experiment.ContinuousTrial{
		Control: draw(1000, 25, 15),
		Test:    draw(1000, 28, 16),
	}
	return trial, "Revenue per User ($)"
}
