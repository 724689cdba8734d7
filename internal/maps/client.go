// README: Shared Google Maps client construction.
package maps

import (
	"fmt"

	"googlemaps.github.io/maps"
)

const (
	defaultLanguage = "it"
	defaultRegion   = "it"
)

// Options tune the Google Maps calls. Zero values use Italian defaults.
type Options struct {
	Language string
	Region   string
	// ClientOptions are passed to maps.NewClient (tests use maps.WithBaseURL).
	ClientOptions []maps.ClientOption
}

func (o Options) language() string {
	if o.Language == "" {
		return defaultLanguage
	}
	return o.Language
}

func (o Options) region() string {
	if o.Region == "" {
		return defaultRegion
	}
	return o.Region
}

func newClient(apiKey string, opts Options) (*maps.Client, error) {
	clientOpts := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts.ClientOptions...)
	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
