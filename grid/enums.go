package grid

// Horizontal alignment of cell content.
// ENUM(left, center, right, justify)
type Align int

// Table part grid section belongs to.
// ENUM(header, body, footer)
type Part int
