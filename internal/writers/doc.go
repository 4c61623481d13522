// Package writers renders decoded minspace files for minspace-dump.
//
// Every format goes through pkg/api (v1) so the JSON shapes stay stable.
// Formats register themselves in init blocks; callers dispatch by name.
package writers
