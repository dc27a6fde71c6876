// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

// The XML codec's record- and field-level emission lives in record.go and
// field.go (AsXML methods); a Record never emits the enclosing collection
// tags itself (§4.4). These constants are the collection wrapper callers
// open before streaming records and close afterward.
const (
	XMLProlog          = `<?xml version="1.0" encoding="UTF-8" ?>`
	CollectionOpenTag  = `<marc:collection xmlns:marc="http://www.loc.gov/MARC21/slim" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.loc.gov/MARC21/slim http://www.loc.gov/standards/marcxml/schema/MARC21slim.xsd">`
	CollectionCloseTag = `</marc:collection>`
)
