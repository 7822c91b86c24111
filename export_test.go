package mediatype

var (
	ParseParams = parseParams
	ScanParams  = scanParams
)
