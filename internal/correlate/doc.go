// Package correlate binds NS lesson-plan entries to grid labels, class by
// class.
//
// A Correlator pairs the classes of both documents by name. Its automatic
// pass binds every NS lesson to the first unused label whose subject matches
// case-insensitively and whose teacher matches exactly, falling back to a
// previously stored decision. What remains is resolved by a reviewer through
// Candidates and Decide.
//
// The mapping is oriented NS lesson -> label. Assemblers invert it
// explicitly.
package correlate
