package app

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// envVars is the process configuration, read from the environment with
// the SNOWFLAKE_ prefix. A .env file is honoured when present.
type envVars struct {
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	TableDir    string `envconfig:"TABLE_DIR"   default:"."`
	PluginDir   string `envconfig:"PLUGIN_DIR"  default:"."`
	Workers     int    `envconfig:"WORKERS"     default:"0"`
}

func mustLoadEnv() envVars {
	_ = godotenv.Load()

	var env envVars
	if err := envconfig.Process("snowflake", &env); err != nil {
		panic(err)
	}

	return env
}
