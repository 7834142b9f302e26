package fixedcol

// Index is a dense, non-owning reference to a slot inside a fixed-capacity
// container. It is strictly 32-bit and becomes stale once the referenced slot
// is freed and reused.
type Index uint32

// Invalid is the sentinel Index used to encode an absent link (an empty
// bucket head, a missing child, the end of a chain). No valid slot ever has
// this index.
const Invalid = ^Index(0)
