package questionnaire

import "github.com/MikeSquared-Agency/ArmFinder/internal/matching"

// TotalSteps is the number of pages in the requirement form.
const TotalSteps = 5

// Slider describes one numeric input.
type Slider struct {
	Field   string  `json:"field"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Preset is a one-click shortcut that sets a field to Value.
type Preset struct {
	Label string  `json:"label"`
	Range string  `json:"range"`
	Value float64 `json:"value"`
}

type Option struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Step struct {
	Number      int      `json:"number"`
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Prompt      string   `json:"prompt"`
	Sliders     []Slider `json:"sliders,omitempty"`
	Presets     []Preset `json:"presets,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Descriptor is everything the UI needs to render the form.
type Descriptor struct {
	TotalSteps int                   `json:"total_steps"`
	Defaults   matching.Requirements `json:"defaults"`
	Steps      []Step                `json:"steps"`
}

// CommonApplications are offered as quick picks on the first step.
var CommonApplications = []string{
	"Packaging",
	"Assembly",
	"Welding",
	"Pick and Place",
	"Material Handling",
	"Palletizing",
	"Quality Inspection",
}

// Defaults are the form's starting values.
func Defaults() matching.Requirements {
	return matching.Requirements{
		Application:     "",
		PayloadKg:       5,
		ReachMm:         1000,
		PrecisionMm:     0.5,
		SpeedImportance: 3,
		BudgetMax:       50000,
	}
}

// Form returns a fresh descriptor; callers may modify it freely.
func Form() Descriptor {
	d := Defaults()
	return Descriptor{
		TotalSteps: TotalSteps,
		Defaults:   d,
		Steps: []Step{
			{
				Number:      1,
				Key:         "application",
				Title:       "What will you use the robot arm for?",
				Prompt:      "Describe your application or select from common options below",
				Suggestions: append([]string(nil), CommonApplications...),
			},
			{
				Number: 2,
				Key:    "payload",
				Title:  "What payload capacity do you need?",
				Prompt: "Maximum weight the robot arm needs to lift (in kg)",
				Sliders: []Slider{
					{Field: "payload_needed", Label: "Payload Capacity", Unit: "kg", Min: 1, Max: 100, Step: 1, Default: d.PayloadKg},
				},
				Presets: []Preset{
					{Label: "Light", Range: "1-10 kg", Value: 5},
					{Label: "Medium", Range: "10-50 kg", Value: 25},
					{Label: "Heavy", Range: "50+ kg", Value: 75},
				},
			},
			{
				Number: 3,
				Key:    "reach_precision",
				Title:  "What reach and precision do you need?",
				Prompt: "Define the operating range and accuracy requirements",
				Sliders: []Slider{
					{Field: "reach_needed", Label: "Reach Required", Unit: "mm", Min: 500, Max: 3000, Step: 100, Default: d.ReachMm},
					{Field: "precision_needed", Label: "Precision Required", Unit: "mm", Min: 0.01, Max: 1, Step: 0.01, Default: d.PrecisionMm},
				},
			},
			{
				Number: 4,
				Key:    "speed",
				Title:  "How important is speed for your application?",
				Prompt: "Rate the importance of operational speed",
				Options: []Option{
					{Value: 5, Label: "Critical - Maximum speed is essential", Description: "For high-volume production lines"},
					{Value: 4, Label: "Very Important - Speed is a key factor", Description: "For efficient operations with throughput targets"},
					{Value: 3, Label: "Important - Good balance of speed and other factors", Description: "For standard industrial applications"},
					{Value: 2, Label: "Somewhat Important - Speed is secondary", Description: "For applications where precision matters more"},
					{Value: 1, Label: "Not Important - Speed is not a concern", Description: "For specialized or sensitive operations"},
				},
			},
			{
				Number: 5,
				Key:    "budget",
				Title:  "What's your budget?",
				Prompt: "Maximum investment for your robot arm solution",
				Sliders: []Slider{
					{Field: "budget_max", Label: "Maximum Budget", Unit: "USD", Min: 5000, Max: 150000, Step: 5000, Default: d.BudgetMax},
				},
				Presets: []Preset{
					{Label: "Entry-Level", Range: "$5K-$25K", Value: 15000},
					{Label: "Mid-Range", Range: "$25K-$75K", Value: 50000},
					{Label: "Premium", Range: "$75K-$150K", Value: 100000},
				},
			},
		},
	}
}

// Answers holds form input where any field may be left unset.
type Answers struct {
	Application     *string  `json:"application,omitempty"`
	PayloadKg       *float64 `json:"payload_needed,omitempty"`
	ReachMm         *float64 `json:"reach_needed,omitempty"`
	PrecisionMm     *float64 `json:"precision_needed,omitempty"`
	SpeedImportance *int     `json:"speed_importance,omitempty"`
	BudgetMax       *float64 `json:"budget_max,omitempty"`
}

// Complete fills unset answers from Defaults so the matcher always receives a
// fully specified query.
func (a Answers) Complete() matching.Requirements {
	r := Defaults()
	if a.Application != nil {
		r.Application = *a.Application
	}
	if a.PayloadKg != nil {
		r.PayloadKg = *a.PayloadKg
	}
	if a.ReachMm != nil {
		r.ReachMm = *a.ReachMm
	}
	if a.PrecisionMm != nil {
		r.PrecisionMm = *a.PrecisionMm
	}
	if a.SpeedImportance != nil {
		r.SpeedImportance = *a.SpeedImportance
	}
	if a.BudgetMax != nil {
		r.BudgetMax = *a.BudgetMax
	}
	return r
}
