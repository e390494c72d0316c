package assets

import _ "embed"

// FeaturesJSON is the built-in feature list rendered when no --features file is given.
//
//go:embed features.json
var FeaturesJSON []byte
