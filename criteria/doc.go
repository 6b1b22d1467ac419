// Package criteria holds the query criteria model consumed by the query
// compiler: a tree of AND/OR filters with leaf conditions, a list of orders
// and optional pagination.
//
// Values of this package are treated as immutable once built. Helper methods
// such as WithFilter return a modified copy instead of changing the receiver.
package criteria
