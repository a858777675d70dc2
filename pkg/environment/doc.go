// Package environment names the deployment environments the form service
// can run in and parses them from configuration.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
package environment
