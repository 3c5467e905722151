// Package record manufactures fixed-shape record types at runtime.
//
// A Factory turns an ordered list of field labels into a new *Type. Each call
// produces an independent type, even when two calls share the same labels, so
// that per-type method definitions never leak between them. Instances of a
// type are built positionally with Type.New and expose a uniform surface:
// indexed and named access, structural equality, and read-only collection
// helpers (Each, EachPair, Dig, Select, ToSlice, ValuesAt, Members, Size).
//
// # Named and anonymous types
//
// When the first argument handed to Factory.Create is a Go string, it is taken
// as a display name rather than a field. The name is capitalized and the type
// is bound into the factory's Namespace. Every other argument is a field label;
// Symbol is the natural label type, but any value is accepted through its
// string form. Labels are never validated.
//
// # Storage
//
// Instance fields live in an ordered map keyed by label. Integer keys address
// slots by their position in that map, name keys address them directly.
// Writing to a name the type never declared appends a new slot to that one
// instance: the declared shape (Type.Fields) and the instance's storage
// (Instance.Members) may diverge, and every collection helper reports the
// widened storage.
//
// # Methods
//
// A type carries a method table reachable through Instance.Call. The built-in
// operations are installed first; a Block passed to Create runs afterwards and
// may add methods or shadow built-ins. The typed Go methods on Instance always
// run the built-in behaviour.
package record
