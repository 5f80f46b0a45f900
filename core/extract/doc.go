// Package extract turns fetched Steam pages into field values.
//
// The pages are only semi-structured: the same field may appear as an XML
// element, inside a specific HTML node, or not at all, depending on how Steam
// happens to render the page. Each logical field therefore has an ordered
// chain of extraction strategies. A Strategy is a pure function from a
// Document to a value-or-absent result; the Chain evaluates its strategies
// left to right and accepts the first hit. When every strategy misses, the
// previously stored value is kept and the miss is logged at info level; a
// miss is never an error and a field is never overwritten with a blank.
//
// Author identity resolution is the one stateful part: vanity profile URLs
// require a secondary fetch, memoized in a VanityCache scoped to a single job
// run.
package extract
