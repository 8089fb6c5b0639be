package chatify

// ConvertOptions holds options for buffer conversion.
type ConvertOptions struct {
	NormalizeMath bool
	Config        *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithMathNormalize sets whether to rewrite math notation to $/$$ delimiters.
func WithMathNormalize(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.NormalizeMath = enable
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		NormalizeMath: true,
		Config:        DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
