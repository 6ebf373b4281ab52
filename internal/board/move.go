package board

import "fmt"

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-15: piece moved (Piece, 0-12)
// bits 16-19: piece captured (Piece, 0-12; NoPiece if none)
// bits 20-22: promotion piece type (0-6; NoPieceType if none)
// bits 23-28: flags
//
// The flag bits mirror a reference engine's MoveFlag bitmask rather than the
// mutually-exclusive 2-bit scheme this layout replaces, so capture and
// promotion (e.g. queening a pawn onto an occupied square) can be expressed
// simultaneously.
type Move uint32

// Move flags, shifted into bits 23-28.
const (
	flagShift = 23

	FlagCapture        uint32 = 1 << (flagShift + 0)
	FlagPromotion      uint32 = 1 << (flagShift + 1)
	FlagEnPassant      uint32 = 1 << (flagShift + 2)
	FlagCastleKingside uint32 = 1 << (flagShift + 3)
	FlagCastleQueen    uint32 = 1 << (flagShift + 4)
	FlagDoublePush     uint32 = 1 << (flagShift + 5)
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

func packMove(from, to Square, pieceMoved, pieceCaptured Piece, promo PieceType, flags uint32) Move {
	return Move(uint32(from) |
		uint32(to)<<6 |
		uint32(pieceMoved)<<12 |
		uint32(pieceCaptured)<<16 |
		uint32(promo)<<20 |
		flags)
}

// NewMove creates a quiet or capturing move, deriving piece identity and
// capture status from the position (pieceCaptured is whatever currently sits
// on the destination square before the move is applied).
func NewMove(p *Position, from, to Square) Move {
	moved := p.PieceAt(from)
	captured := p.PieceAt(to)
	var flags uint32
	if captured != NoPiece {
		flags |= FlagCapture
	}
	return packMove(from, to, moved, captured, NoPieceType, flags)
}

// NewDoublePawnPush creates a two-square pawn advance.
func NewDoublePawnPush(p *Position, from, to Square) Move {
	moved := p.PieceAt(from)
	return packMove(from, to, moved, NoPiece, NoPieceType, FlagDoublePush)
}

// NewPromotion creates a pawn promotion, which may also be a capture.
func NewPromotion(p *Position, from, to Square, promo PieceType) Move {
	moved := p.PieceAt(from)
	captured := p.PieceAt(to)
	flags := FlagPromotion
	if captured != NoPiece {
		flags |= FlagCapture
	}
	return packMove(from, to, moved, captured, promo, flags)
}

// NewEnPassant creates an en passant capture move. The captured piece is
// always a pawn of the side not moving, standing beside the destination
// square rather than on it.
func NewEnPassant(p *Position, from, to Square) Move {
	moved := p.PieceAt(from)
	captured := NewPiece(Pawn, moved.Color().Other())
	return packMove(from, to, moved, captured, NoPieceType, FlagEnPassant|FlagCapture)
}

// NewCastling creates a castling move (the king's movement; the rook's
// movement is implied by castling side and applied in MakeMove).
func NewCastling(p *Position, from, to Square, kingside bool) Move {
	moved := p.PieceAt(from)
	flag := FlagCastleQueen
	if kingside {
		flag = FlagCastleKingside
	}
	return packMove(from, to, moved, NoPiece, NoPieceType, flag)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// PieceMoved returns the piece that occupied the origin square.
func (m Move) PieceMoved() Piece {
	return Piece((m >> 12) & 0xF)
}

// PieceCaptured returns the captured piece, or NoPiece.
func (m Move) PieceCaptured() Piece {
	return Piece((m >> 16) & 0xF)
}

// Promotion returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType((m >> 20) & 0x7)
}

func (m Move) flags() uint32 {
	return uint32(m) &^ 0x7FFFFF
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.flags()&FlagPromotion != 0
}

// IsCastling returns true if this is a castling move of either side.
func (m Move) IsCastling() bool {
	return m.flags()&(FlagCastleKingside|FlagCastleQueen) != 0
}

// IsKingsideCastle returns true if this is a kingside castle.
func (m Move) IsKingsideCastle() bool {
	return m.flags()&FlagCastleKingside != 0
}

// IsQueensideCastle returns true if this is a queenside castle.
func (m Move) IsQueensideCastle() bool {
	return m.flags()&FlagCastleQueen != 0
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.flags()&FlagEnPassant != 0
}

// IsDoublePawnPush returns true if this is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.flags()&FlagDoublePush != 0
}

// IsCapture returns true if this move captures a piece. The capture bit is
// set at construction time, so this never needs to consult a *Position.
func (m Move) IsCapture() bool {
	return m.flags()&FlagCapture != 0
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion()-Knight])
	}

	return s
}

// ParseMove parses a UCI format move string against the current position.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(pos, from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}

	pt := piece.Type()

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(pos, from, to, to > from), nil
	}

	if pt == Pawn && to == pos.EnPassant {
		return NewEnPassant(pos, from, to), nil
	}

	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		return NewDoublePawnPush(pos, from, to), nil
	}

	return NewMove(pos, from, to), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UndoInfo stores information needed to undo a move.
type UndoInfo struct {
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	PawnKey        uint64
	Checkers       Bitboard
	KingSquare     [2]Square
	Pieces         [2][6]Bitboard
	Occupied       [2]Bitboard
	AllOccupied    Bitboard
	Mailbox        [64]Piece
	Valid          bool
}
