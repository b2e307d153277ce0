package sources

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/amby-app/feedsync/pkg/errors"
)

// Partner is one configured partner feed.
type Partner struct {
	// Name is the partner organization name (registry key).
	Name string `yaml:"-"`

	// Kind selects the normalizer variant.
	Kind Kind `yaml:"kind"`

	// TokenEnv names the environment variable holding the partner's
	// platform API token (storefront-hosted partners only).
	TokenEnv string `yaml:"token_env,omitempty"`

	// FeedURL is the partner feed endpoint (CRM partners only).
	FeedURL string `yaml:"feed_url,omitempty"`

	// Markup is added to every normalized price, in major currency units.
	Markup float64 `yaml:"markup,omitempty"`
}

// Registry is the set of configured partners, keyed by name.
type Registry struct {
	Partners map[string]Partner `yaml:"partners"`
}

// LoadRegistry reads the partner registry from a YAML file. A missing
// file yields the built-in defaults so the known partners work without
// any local configuration.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultRegistry(), nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for name, partner := range registry.Partners {
		if partner.Kind == "" {
			return nil, errors.WrapValidation("kind", fmt.Errorf("partner %s has no kind", name))
		}
		partner.Name = name
		registry.Partners[name] = partner
	}

	return &registry, nil
}

// DefaultRegistry returns the built-in partner set.
func DefaultRegistry() *Registry {
	return &Registry{
		Partners: map[string]Partner{
			"wantherdress": {
				Name:     "wantherdress",
				Kind:     KindWantherdress,
				TokenEnv: "STOREFRONT_TOKEN_WANTHERDRESS",
			},
			"bewearcy": {
				Name:    "bewearcy",
				Kind:    KindBewearcy,
				FeedURL: "http://crm.bewearcy.com/api/gettovar",
				Markup:  600,
			},
		},
	}
}

// Partner looks up a configured partner by name.
func (r *Registry) Partner(name string) (Partner, error) {
	partner, ok := r.Partners[name]
	if !ok {
		return Partner{}, errors.NewNotFoundError("partner", name)
	}
	return partner, nil
}
