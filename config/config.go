package config

type Config struct {
	App struct {
		Host string
		Port int
	}
	Blog struct {
		// PageSize is the default page size for post listings.
		PageSize int
		// Simulated backend latency band, in milliseconds.
		LatencyMinMs int
		LatencyMaxMs int
	}
}

// Default returns the configuration used when a field is absent from the
// TOML file.
func Default() Config {
	var cfg Config
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.Blog.PageSize = 4
	cfg.Blog.LatencyMinMs = 100
	cfg.Blog.LatencyMaxMs = 300
	return cfg
}
