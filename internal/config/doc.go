// Package config loads the two optional configuration files of a run.
//
//   - Settings (YAML, ~/.abook/abookconv.yaml): default paths, the FQDN used
//     in UIDs and the vCard extension prefix.
//   - abookrc (~/.abook/abookrc): custom `field` declarations and `view`
//     groups, parsed into a read-only domain.FieldConfig.
//
// Missing files are not errors; defaults are returned instead.
package config
