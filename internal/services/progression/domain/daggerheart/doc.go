// Package daggerheart implements the Daggerheart SRD character advancement
// rules: the tier and option tables governing levels 1 through 10, the
// tagged advancement choices a player records in each slot, the level-up
// draft workflow, and the validator enforcing slot, tier, and selection
// invariants before anything is persisted.
package daggerheart
