// Package config resolves the pathviz command configuration.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. built-in defaults (Default)
//  2. a .env file (LoadDotEnv), which only fills variables not already set
//  3. PATHVIZ_* environment variables (ApplyEnv)
//  4. a YAML layout file (ApplyLayout / LoadLayoutFile)
//  5. command-line flags, applied by the caller
//
// Validate checks the merged result before a session is built from it.
package config
