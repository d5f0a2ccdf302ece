package text

// MeasurerOption configures a font-metrics provider.
type MeasurerOption func(*measurerConfig)

// measurerConfig holds configuration for measurers.
type measurerConfig struct {
	fonts     *FontSet
	cacheSize int
	language  string
}

// defaultMeasurerConfig returns the default measurer configuration.
func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		cacheSize: 1024,
		language:  "en",
	}
}

// WithFontSet sets the fonts used for measuring. The default is GoFonts.
func WithFontSet(fs *FontSet) MeasurerOption {
	return func(c *measurerConfig) {
		c.fonts = fs
	}
}

// WithCacheSize sets the maximum number of cached measurements.
// A value of 0 or less selects a large default limit.
func WithCacheSize(n int) MeasurerOption {
	return func(c *measurerConfig) {
		c.cacheSize = n
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "de").
// Only ShapingMeasurer uses it.
func WithLanguage(lang string) MeasurerOption {
	return func(c *measurerConfig) {
		c.language = lang
	}
}

// resolve fills in the font set, loading GoFonts when none was given.
func (c *measurerConfig) resolve() error {
	if c.fonts != nil {
		return nil
	}
	fs, err := GoFonts()
	if err != nil {
		return err
	}
	c.fonts = fs
	return nil
}
