// Package config manages user-level settings stored at ~/.create-nightwatch/config.yaml.
// It provides functions to load, read, and write the defaults used by the init
// workflow: exclusion suffixes, overwrite policy, template directory and
// download mirror.
package config
