package games

const BoardSize = 3

type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string { return string(m) }

type Board [BoardSize][BoardSize]Mark

func NewBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Empty
		}
	}
	return b
}

// Winner scans rows, then columns, then both diagonals and returns the first
// complete line's mark, or Empty.
func Winner(b Board) Mark {
	for i := 0; i < BoardSize; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
	}
	for j := 0; j < BoardSize; j++ {
		if b[0][j] != Empty && b[0][j] == b[1][j] && b[1][j] == b[2][j] {
			return b[0][j]
		}
	}
	if b[1][1] != Empty {
		if b[0][0] == b[1][1] && b[1][1] == b[2][2] {
			return b[1][1]
		}
		if b[0][2] == b[1][1] && b[1][1] == b[2][0] {
			return b[1][1]
		}
	}
	return Empty
}

func (b Board) Full() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

type Move struct {
	Row    int
	Col    int
	Mark   Mark
	Winner Mark
	Next   Mark
	Phase  Phase
}

// TicTacToe is the two-player 3x3 game. X always opens.
type TicTacToe struct {
	board   Board
	current Mark
	winner  Mark
	phase   Phase
}

func NewTicTacToe() *TicTacToe {
	t := &TicTacToe{}
	t.Reset()
	return t
}

func (t *TicTacToe) Reset() {
	t.board = NewBoard()
	t.current = X
	t.winner = Empty
	t.phase = PhasePlaying
}

// Select places the current player's mark. It reports false, changing nothing,
// when the game is over, the cell is taken or the coordinates fall off the board.
func (t *TicTacToe) Select(row, col int) (Move, bool) {
	if t.phase != PhasePlaying {
		return Move{}, false
	}
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Move{}, false
	}
	if t.board[row][col] != Empty {
		return Move{}, false
	}

	mark := t.current
	t.board[row][col] = mark

	if w := Winner(t.board); w != Empty {
		t.winner = w
		t.phase = PhaseWon
	} else if t.board.Full() {
		t.phase = PhaseDraw
	} else if mark == X {
		t.current = O
	} else {
		t.current = X
	}

	return Move{
		Row:    row,
		Col:    col,
		Mark:   mark,
		Winner: t.winner,
		Next:   t.current,
		Phase:  t.phase,
	}, true
}

func (t *TicTacToe) Cell(row, col int) Mark { return t.board[row][col] }
func (t *TicTacToe) Board() Board { return t.board }
func (t *TicTacToe) Current() Mark { return t.current }
func (t *TicTacToe) Winner() Mark { return t.winner }
func (t *TicTacToe) Phase() Phase { return t.phase }
func (t *TicTacToe) Active() bool { return t.phase == PhasePlaying }
