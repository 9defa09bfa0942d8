package prog

import "github.com/kelseyhightower/envconfig"

// Env is the configuration taken from the environment. Each field is the
// default of the flag with the same name.
type Env struct {
	// DB is read from $STRIDED_DB.
	DB string `envconfig:"DB"`
	// Log is read from $STRIDED_LOG.
	Log string `envconfig:"LOG"`
}

// LoadEnv reads Env from the environment.
func LoadEnv() (Env, error) {
	var env Env
	err := envconfig.Process("strided", &env)
	return env, err
}
