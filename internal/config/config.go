package config

import (
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
)

type Config struct {
	BindHost           string
	Port               string
	Debug              bool
	AtomicCreate       bool
	VerifyConnectivity bool
	Logger             Logger
	Neo4j              Neo4j
}

// Logger configures the log output
type Logger struct {
	Format string
	Level  string
}

// Neo4j holds the connection settings for the graph database
type Neo4j struct {
	URI      string
	User     string
	Password string
}

// New parses the process flags, falling back to environment variables and defaults
func New() *Config {
	cfg, err := Parse(os.Args[1:])
	if err != nil {
		// ExitOnError already reported the problem
		os.Exit(2)
	}
	return cfg
}

// Parse builds a configuration from the given command line arguments
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("person-gateway", flag.ExitOnError)

	fs.StringVar(&cfg.Neo4j.URI, "neo4j-uri", envOrDefault("NEO4J_URI", "bolt://localhost:7687"), "Neo4j connection URI")
	fs.StringVar(&cfg.Neo4j.User, "neo4j-user", envOrDefault("NEO4J_USER", "neo4j"), "Neo4j user")
	fs.StringVar(&cfg.Neo4j.Password, "neo4j-password", envOrDefault("NEO4J_PASSWORD", "supersecurepassword"), "Neo4j password")
	fs.StringVar(&cfg.BindHost, "bind-host", envOrDefault("BIND_HOST", "0.0.0.0"), "Bind host")
	fs.StringVar(&cfg.Port, "port", envOrDefault("PORT", "5000"), "Port to listen on")
	fs.BoolVar(&cfg.Debug, "debug", boolEnv("DEBUG", false), "Enable debug logging")
	fs.BoolVar(&cfg.AtomicCreate, "atomic-create", boolEnv("ATOMIC_CREATE", false), "Allocate person ids and create the node in a single statement")
	fs.BoolVar(&cfg.VerifyConnectivity, "verify-connectivity", true, "Verify database connectivity on startup")
	fs.StringVar(&cfg.Logger.Format, "log-format", "json", "which log format to use")
	fs.StringVar(&cfg.Logger.Level, "log-level", "info", "which log level to output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Debug {
		cfg.Logger.Level = "debug"
	}

	return cfg, nil
}

// Addr returns the address the HTTP server listens on
func (c *Config) Addr() string {
	return c.BindHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
