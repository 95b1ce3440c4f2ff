package board

var (
	// MiniBoard is a 5x5 grid with two opposite corners barred.
	MiniBoard []string
	// StandardBoard is a 15x15 daily-style grid with 180 degree symmetry
	// and no entries shorter than three letters.
	StandardBoard []string
	// MidiBoard is an 11x11 grid with the same conventions as
	// StandardBoard.
	MidiBoard []string
)

const (
	MiniLayout     = "Mini"
	StandardLayout = "Standard"
	MidiLayout     = "Midi"
)

func init() {
	MiniBoard = []string{
		`#....`,
		`.....`,
		`.....`,
		`.....`,
		`....#`,
	}
	StandardBoard = []string{
		`....#.....#....`,
		`....#.....#....`,
		`....#.....#....`,
		`.......#.......`,
		`###....#...####`,
		`......#....#...`,
		`.....#.....#...`,
		`...#.......#...`,
		`...#.....#.....`,
		`...#....#......`,
		`####...#....###`,
		`.......#.......`,
		`....#.....#....`,
		`....#.....#....`,
		`....#.....#....`,
	}
	MidiBoard = []string{
		`....#......`,
		`....#......`,
		`....#......`,
		`...#...#...`,
		`......#....`,
		`###.....###`,
		`....#......`,
		`...#...#...`,
		`......#....`,
		`......#....`,
		`......#....`,
	}
}

// Layout returns the rows of a named layout. The empty name selects the
// standard layout.
func Layout(name string) ([]string, bool) {
	switch name {
	case StandardLayout, "":
		return StandardBoard, true
	case MiniLayout:
		return MiniBoard, true
	case MidiLayout:
		return MidiBoard, true
	}
	return nil, false
}
