// Package schema holds the reusable GraphQL fragment for connection
// pagination: the OrderDirection enum and the PageInfo type. Services compose
// Fragment into their own schema next to their entity-specific Connection and
// Edge types.
package schema

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const Fragment = `
enum OrderDirection {
  ASC
  DESC
}

type PageInfo {
  startCursor: String
  endCursor: String
  hasNextPage: Boolean!
  hasPreviousPage: Boolean!
}
`

// MustParse parses Fragment into a schema, panicking on error. The fragment
// is a compile-time constant, so a failure here is a programming error.
func MustParse() *ast.Schema {
	return gqlparser.MustLoadSchema(&ast.Source{
		Name:  "connection.graphql",
		Input: Fragment,
	})
}
