// Package builder defines shared constants used by the graph builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors and log records with the strategy name.
//-----------------------------------------------------------------------------

const (
	// MethodSmallDictionary is the canonical name for the quadratic strategy.
	MethodSmallDictionary = "BuildFromSmallDictionary"
	// MethodLargeDictionary is the canonical name for the bucketed strategy.
	MethodLargeDictionary = "BuildFromLargeDictionary"
	// MethodBuild is the canonical name for the strategy dispatcher.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Bucket keys
//-----------------------------------------------------------------------------

// Wildcard replaces the blanked position in a bucket pattern, e.g. "h*t".
const Wildcard = '*'
