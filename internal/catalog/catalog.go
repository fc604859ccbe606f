package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArm is wrapped by every validation failure.
var ErrInvalidArm = errors.New("invalid arm")

type PriceRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Arm is one robot arm specification in the catalog.
type Arm struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Manufacturer string     `json:"manufacturer" yaml:"manufacturer"`
	PayloadKg    float64    `json:"payload_kg" yaml:"payload_kg"`
	ReachMm      float64    `json:"reach_mm" yaml:"reach_mm"`
	Speed        int        `json:"speed" yaml:"speed"` // relative rating 1-10
	PrecisionMm  float64    `json:"precision_mm" yaml:"precision_mm"`
	Applications []string   `json:"applications" yaml:"applications"`
	Description  string     `json:"description" yaml:"description"`
	Price        PriceRange `json:"price" yaml:"price"`
	Features     []string   `json:"features" yaml:"features"`
	Image        string     `json:"image,omitempty" yaml:"image,omitempty"`
}

// Source yields catalog records, e.g. a database table.
type Source interface {
	ListArms(ctx context.Context) ([]Arm, error)
}

// Catalog is a validated, read-only set of arms in a fixed order.
// Order matters: ranking ties keep catalog order.
type Catalog struct {
	arms []Arm
	byID map[string]int
}

// New validates arms and returns a catalog holding its own copy of them.
func New(arms []Arm) (*Catalog, error) {
	if len(arms) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidArm)
	}
	c := &Catalog{
		arms: make([]Arm, 0, len(arms)),
		byID: make(map[string]int, len(arms)),
	}
	for _, a := range arms {
		if err := Validate(a); err != nil {
			return nil, err
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidArm, a.ID)
		}
		c.byID[a.ID] = len(c.arms)
		c.arms = append(c.arms, cloneArm(a))
	}
	return c, nil
}

// Load reads every arm from src and builds a catalog from them.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	arms, err := src.ListArms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list arms: %w", err)
	}
	return New(arms)
}

// Arms returns a copy of the catalog in catalog order.
func (c *Catalog) Arms() []Arm {
	out := make([]Arm, len(c.arms))
	for i, a := range c.arms {
		out[i] = cloneArm(a)
	}
	return out
}

func (c *Catalog) Get(id string) (Arm, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Arm{}, false
	}
	return cloneArm(c.arms[i]), true
}

func (c *Catalog) Len() int { return len(c.arms) }

// Validate checks a single arm against the catalog's data constraints.
func Validate(a Arm) error {
	switch {
	case a.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidArm)
	case a.Name == "":
		return fmt.Errorf("%w: %s: missing name", ErrInvalidArm, a.ID)
	case !positive(a.PayloadKg):
		return fmt.Errorf("%w: %s: payload must be positive", ErrInvalidArm, a.ID)
	case !positive(a.ReachMm):
		return fmt.Errorf("%w: %s: reach must be positive", ErrInvalidArm, a.ID)
	case a.Speed < 1 || a.Speed > 10:
		return fmt.Errorf("%w: %s: speed %d outside 1-10", ErrInvalidArm, a.ID, a.Speed)
	case !positive(a.PrecisionMm):
		return fmt.Errorf("%w: %s: precision must be positive", ErrInvalidArm, a.ID)
	case len(a.Applications) == 0:
		return fmt.Errorf("%w: %s: no applications", ErrInvalidArm, a.ID)
	case !positive(a.Price.Min) || !positive(a.Price.Max):
		return fmt.Errorf("%w: %s: price must be positive", ErrInvalidArm, a.ID)
	case a.Price.Min > a.Price.Max:
		return fmt.Errorf("%w: %s: price min %.0f exceeds max %.0f", ErrInvalidArm, a.ID, a.Price.Min, a.Price.Max)
	}
	for _, app := range a.Applications {
		if app == "" {
			return fmt.Errorf("%w: %s: empty application tag", ErrInvalidArm, a.ID)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func cloneArm(a Arm) Arm {
	a.Applications = append([]string(nil), a.Applications...)
	a.Features = append([]string(nil), a.Features...)
	return a
}
