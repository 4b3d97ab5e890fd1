// Package metadict extends a session's class catalog with the classes and
// properties a file declares in its own MetaDictionary.
package metadict
