package ridesharing

import (
	"context"
	"fmt"
	"time"

	"github.com/travigo/ridesharing/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// Connector fetches offers from a single third party provider and translates them into Offers
type Connector interface {
	Provider() ProviderConfig
	Fetch(ctx context.Context, request Request) ([]Offer, error)
}

type Kind string

const (
	KindInstantSystem Kind = "instant_system"
	KindKaros         Kind = "karos"
)

type PriceUnit string

const (
	PriceUnitMinor PriceUnit = "minor"
	PriceUnitMajor PriceUnit = "major"
)

const DefaultTimeout = 2 * time.Second

// ProviderConfig is loaded once per instance and never modified afterwards
type ProviderConfig struct {
	ID         string `yaml:"id" json:"id" validate:"required"`
	Kind       Kind   `yaml:"kind" json:"kind" validate:"required,oneof=instant_system karos"`
	ServiceURL string `yaml:"service_url" json:"service_url" validate:"required,url"`
	APIKey     string `yaml:"api_key" json:"-"`

	Modes []ctdf.Mode `yaml:"modes" json:"modes" validate:"required,min=1"`

	Network       string            `yaml:"network" json:"network" validate:"required"`
	Operator      string            `yaml:"operator" json:"operator"`
	OperatorNames map[string]string `yaml:"operator_names" json:"-"`

	RatingScaleMin float64 `yaml:"rating_scale_min" json:"rating_scale_min"`
	RatingScaleMax float64 `yaml:"rating_scale_max" json:"rating_scale_max" validate:"gtfield=RatingScaleMin"`

	PriceUnit PriceUnit     `yaml:"price_unit" json:"price_unit" validate:"omitempty,oneof=minor major"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
}

func (p ProviderConfig) SupportsMode(mode ctdf.Mode) bool {
	return slices.Contains(p.Modes, mode)
}

// PrimaryMode is the mode offers from this provider are presented with
func (p ProviderConfig) PrimaryMode() ctdf.Mode {
	if len(p.Modes) == 0 {
		return ctdf.ModeRidesharing
	}
	return p.Modes[0]
}

func (p ProviderConfig) RequestTimeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

// OperatorName maps a provider operator identifier onto the configured display name
func (p ProviderConfig) OperatorName(nativeOperator string, fallback string) string {
	if name, exists := p.OperatorNames[nativeOperator]; exists {
		return name
	}

	if p.Operator != "" {
		return p.Operator
	}

	return fallback
}

// Request is a single leg that offers are searched for
type Request struct {
	Origin      ctdf.Location
	Destination ctdf.Location
	DateTime    time.Time
	Mode        ctdf.Mode
}

// Key identifies the leg, coordinates are rounded to about 10 metres
func (r Request) Key() string {
	return fmt.Sprintf("%.4f,%.4f:%.4f,%.4f:%d:%s",
		r.Origin.Latitude(), r.Origin.Longitude(),
		r.Destination.Latitude(), r.Destination.Longitude(),
		r.DateTime.Unix(),
		r.Mode,
	)
}
