// Package output renders command results for moneytracker-cli.
//
// Results are printed as a table (default), JSON or YAML. Tables take their
// columns from the json tags of the result type; fields tagged table:"wide"
// appear only with --wide and fields tagged table:"-" never appear. JSON and
// YAML always carry every field.
package output
