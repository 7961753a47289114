// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every duration is expressed in whole seconds in the file; accessor methods
// convert to time.Duration.
package config
