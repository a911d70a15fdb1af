// Package confloader loads layered client configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (MONEYTRACKER_SECTION_KEY)
//  3. YAML configuration file
//  4. Values already present in the target struct
//
// Configuration is read once per process; there is no reload.
package confloader
