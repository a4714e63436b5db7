package config // package config loads application configuration from environment variables

import (
    "os"       // os provides access to environment variables
    "log"      // log is used to report configuration errors and halt execution
    "strconv"  // strconv converts strings to other types
)

// Config holds the runtime configuration for the booking server. Each field
// corresponds to an environment variable. Required fields use must()/
// mustInt() and cause a fatal log on startup if unset; optional fields
// default sensibly.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on

    SeederEnabled              bool // whether to populate demo movies/theaters on startup
    SeederMovies               int  // number of demo movies to create
    SeederTheaters             int  // number of demo theaters to create
    SeederAssignmentsPerMovie  int  // number of theaters assigned to each demo movie
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:  must("APP_ENV"),  // environment (dev/test/prod)
        Port: must("APP_PORT"), // port to bind the HTTP server

        SeederEnabled:             envBool("SEEDER_ENABLED", false),
        SeederMovies:              envInt("SEEDER_MOVIES", 5),
        SeederTheaters:            envInt("SEEDER_THEATERS", 5),
        SeederAssignmentsPerMovie: envInt("SEEDER_ASSIGNMENTS_PER_MOVIE", 2),
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// envBool and envInt (optional-with-default env var readers) are defined
// once, in ratelimit.go, and shared across this package's config loaders.
