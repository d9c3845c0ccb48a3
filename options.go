package glass

import "github.com/gogpu/glass/filter"

// Option configures a Panel during creation.
//
// Example:
//
//	// Default parameters, generated identifier
//	p := glass.NewPanel()
//
//	// Parameters read from a key-value source such as *viper.Viper
//	p := glass.NewPanel(glass.WithID("hero"), glass.WithParamSource(v))
type Option func(*panelOptions)

// panelOptions holds optional configuration for Panel creation.
type panelOptions struct {
	id     string
	params filter.Params
	source filter.Source
}

// defaultOptions returns the default panel options.
func defaultOptions() panelOptions {
	return panelOptions{
		params: filter.DefaultParams(),
	}
}

// WithID sets the panel identifier. The identifier names the filter graph
// and must be unique among the panels of one document.
func WithID(id string) Option {
	return func(o *panelOptions) {
		o.id = id
	}
}

// WithParams sets the initial filter parameters. The ID field is ignored;
// the panel identifier always wins.
func WithParams(p filter.Params) Option {
	return func(o *panelOptions) {
		o.params = p
	}
}

// WithParamSource reads the initial filter parameters from src. Keys that
// are not set keep their defaults. It takes precedence over WithParams.
func WithParamSource(src filter.Source) Option {
	return func(o *panelOptions) {
		o.source = src
	}
}
