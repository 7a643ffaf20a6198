// Package config handles YAML configuration loading with environment variable
// substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. Every field is optional; an absent file yields the built-in
// defaults, which point at a backend on the local machine.
package config
