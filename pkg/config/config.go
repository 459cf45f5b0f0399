package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/journeyplanner"
	"github.com/travigo/ridesharing/pkg/ridesharing"
	"github.com/travigo/ridesharing/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "data/ridesharing.yaml"

const DefaultReportsIndex = "ridesharing-fetch-reports"

// InstanceConfig is loaded once at startup and shared read only by every request
type InstanceConfig struct {
	Providers []ridesharing.ProviderConfig `yaml:"providers" validate:"unique=ID,dive"`

	WalkingSpeed      float64     `yaml:"walking_speed" validate:"gte=0"`
	MaxAnchorDistance float64     `yaml:"max_anchor_distance" validate:"gte=0"`
	EcologicModes     []ctdf.Mode `yaml:"ecologic_modes"`

	Classifier ClassifierConfig          `yaml:"classifier"`
	Currencies ridesharing.CurrencyTable `yaml:"currencies" validate:"dive"`

	Cache   CacheConfig   `yaml:"cache"`
	Reports ReportsConfig `yaml:"reports"`
}

type ClassifierConfig struct {
	RapidMargin *time.Duration `yaml:"rapid_margin"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl" validate:"gte=0"`
}

type ReportsConfig struct {
	Index string `yaml:"index"`
}

var nonIdentifierCharacters = regexp.MustCompile(`[^A-Z0-9]+`)

// APIKeyVariable is the environment variable that overrides the api key of a provider
func APIKeyVariable(providerID string) string {
	return fmt.Sprintf("TRAVIGO_PROVIDER_%s_API_KEY", nonIdentifierCharacters.ReplaceAllString(strings.ToUpper(providerID), "_"))
}

func Load(path string) (*InstanceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*InstanceConfig, error) {
	var config InstanceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	config.applyEnvironment(util.GetEnvironmentVariables())

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *InstanceConfig) applyDefaults() {
	if c.WalkingSpeed == 0 {
		c.WalkingSpeed = journeyplanner.DefaultWalkingSpeed
	}

	if c.EcologicModes == nil {
		c.EcologicModes = journeyplanner.NewClassifier().EcologicModes
	}

	if c.Classifier.RapidMargin == nil {
		rapidMargin := journeyplanner.DefaultRapidMargin
		c.Classifier.RapidMargin = &rapidMargin
	}

	if c.Currencies == nil {
		c.Currencies = ridesharing.DefaultCurrencyTable()
	} else {
		normalised := ridesharing.CurrencyTable{}
		for code, currency := range c.Currencies {
			normalised[strings.ToUpper(code)] = currency
		}
		c.Currencies = normalised
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = ridesharing.DefaultCacheExpiration
	}

	if c.Reports.Index == "" {
		c.Reports.Index = DefaultReportsIndex
	}

	for i := range c.Providers {
		if c.Providers[i].Timeout == 0 {
			c.Providers[i].Timeout = ridesharing.DefaultTimeout
		}

		if c.Providers[i].RatingScaleMin == 0 && c.Providers[i].RatingScaleMax == 0 {
			c.Providers[i].RatingScaleMax = 5
		}
	}
}

func (c *InstanceConfig) applyEnvironment(env map[string]string) {
	for i := range c.Providers {
		if apiKey := env[APIKeyVariable(c.Providers[i].ID)]; apiKey != "" {
			c.Providers[i].APIKey = apiKey
		}
	}
}

func (c *InstanceConfig) NewComposer() *journeyplanner.Composer {
	return &journeyplanner.Composer{
		WalkingSpeed:      c.WalkingSpeed,
		MaxAnchorDistance: c.MaxAnchorDistance,
		Currencies:        c.Currencies,
	}
}

func (c *InstanceConfig) NewClassifier() *journeyplanner.Classifier {
	return &journeyplanner.Classifier{
		EcologicModes: c.EcologicModes,
		RapidMargin:   *c.Classifier.RapidMargin,
	}
}
