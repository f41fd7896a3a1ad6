// Package config manages user-level settings stored at ~/.fhevm-scaffold/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default docs source directory and the author string stamped into generated
// manifests. All values can also be supplied through FHEVM_* environment variables.
package config
