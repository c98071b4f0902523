// Package openapi bootstraps form schemas from OpenAPI documents. It maps an
// operation's request body properties onto catalog field kinds (string
// formats, enums, numeric ranges) so an operator starts from a populated
// draft instead of an empty form. The resulting schema is an ordinary
// versioned schema; the importer holds no further ties to the document.
package openapi
