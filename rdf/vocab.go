package rdf

// XSDNamespace is the XML Schema datatype namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// Datatypes referenced by the Hextuples encoder.
const (
	XSDString             = XSDNamespace + "string"
	XSDBoolean            = XSDNamespace + "boolean"
	XSDInteger            = XSDNamespace + "integer"
	XSDLong               = XSDNamespace + "long"
	XSDInt                = XSDNamespace + "int"
	XSDShort              = XSDNamespace + "short"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDUnsignedLong       = XSDNamespace + "unsignedLong"
	XSDUnsignedInt        = XSDNamespace + "unsignedInt"
	XSDUnsignedShort      = XSDNamespace + "unsignedShort"
	XSDFloat              = XSDNamespace + "float"
	XSDDouble             = XSDNamespace + "double"
	XSDDecimal            = XSDNamespace + "decimal"
)

// rawDatatypes holds the datatypes whose lexical form is written unquoted.
var rawDatatypes = map[string]struct{}{
	XSDInteger:            {},
	XSDLong:               {},
	XSDInt:                {},
	XSDShort:              {},
	XSDPositiveInteger:    {},
	XSDNegativeInteger:    {},
	XSDNonPositiveInteger: {},
	XSDNonNegativeInteger: {},
	XSDUnsignedLong:       {},
	XSDUnsignedInt:        {},
	XSDUnsignedShort:      {},
	XSDFloat:              {},
	XSDDouble:             {},
	XSDDecimal:            {},
	XSDBoolean:            {},
}

// IsRawDatatype reports whether literals of the given datatype are emitted
// as bare JSON tokens in Hextuples output.
func IsRawDatatype(datatype string) bool {
	_, ok := rawDatatypes[datatype]
	return ok
}
