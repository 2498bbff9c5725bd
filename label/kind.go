package label

// Kind of element label can point to.
// ENUM(section, table, figure, subfigure, equation, code)
type Kind int

// prefix is the leading character of rendered mark. Prefixes are distinct so
// marks of different kinds never collide.
func (k Kind) prefix() string {
	switch k {
	case KindSection:
		return "s"
	case KindTable:
		return "t"
	case KindFigure:
		return "f"
	case KindSubfigure:
		return "g"
	case KindEquation:
		return "e"
	case KindCode:
		return "c"
	default:
		return "x"
	}
}
