package pip

// ParseLatestFromOutput exports parseLatestFromOutput for testing.
var ParseLatestFromOutput = parseLatestFromOutput //nolint:gochecknoglobals // test export

// FindPipBinary exports findPipBinary for testing.
var FindPipBinary = findPipBinary //nolint:gochecknoglobals // test export
