// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine),
// then env.Parse populates any struct annotated with `env` tags. Each
// configuration type is parsed at most once and cached for the lifetime of
// the process, so feature packages can call Load for their own config
// without coordinating.
//
//	type MongoConfig struct {
//	    URL     string        `env:"MONGODB_URL,required"`
//	    Timeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Required secrets should carry the `,required` tag option; Load then fails
// instead of letting the application start with a missing credential.
// MustLoad panics on failure for configuration the process cannot run
// without.
package config
