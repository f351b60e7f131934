package text

// SourceOption configures Handle creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for parsing a font into a Handle.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// LoaderOption configures a Loader.
type LoaderOption func(*loaderConfig)

// loaderConfig holds configuration for Loader.
type loaderConfig struct {
	fetcher    Fetcher
	basePath   string
	parserName string
	cacheLimit int
}

// defaultLoaderConfig returns the default loader configuration.
func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		fetcher:    NewSchemeFetcher(nil, nil),
		basePath:   "",
		parserName: defaultParserName,
		cacheLimit: 64,
	}
}

// WithFetcher sets the Fetcher used to retrieve font bytes.
func WithFetcher(f Fetcher) LoaderOption {
	return func(c *loaderConfig) {
		if f != nil {
			c.fetcher = f
		}
	}
}

// WithBasePath sets the deployment base path the default font path is
// resolved against (for example "/" or "/portfolio/").
func WithBasePath(base string) LoaderOption {
	return func(c *loaderConfig) {
		c.basePath = base
	}
}

// WithLoaderParser selects the parser backend used for every font the
// loader parses.
func WithLoaderParser(name string) LoaderOption {
	return func(c *loaderConfig) {
		c.parserName = name
	}
}

// WithCacheLimit sets the soft limit of cached handles.
// A value of 0 disables the limit.
func WithCacheLimit(n int) LoaderOption {
	return func(c *loaderConfig) {
		c.cacheLimit = n
	}
}
