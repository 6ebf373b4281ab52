package board

import "testing"

func TestMovePredicates(t *testing.T) {
	pos := NewPosition()

	quiet := NewMove(pos, E2, E3)
	if quiet.IsCapture() || quiet.IsPromotion() || quiet.IsCastling() || quiet.IsEnPassant() || quiet.IsDoublePawnPush() {
		t.Errorf("quiet move %v should have no special flags set", quiet)
	}
	if !quiet.IsQuiet() {
		t.Errorf("quiet move %v should report IsQuiet", quiet)
	}

	double := NewDoublePawnPush(pos, E2, E4)
	if !double.IsDoublePawnPush() {
		t.Errorf("double push %v should report IsDoublePawnPush", double)
	}
	if double.IsCapture() {
		t.Errorf("double push %v should not be a capture", double)
	}

	castleK := NewCastling(pos, E1, G1, true)
	if !castleK.IsCastling() || !castleK.IsKingsideCastle() || castleK.IsQueensideCastle() {
		t.Errorf("castle %v should be kingside castling only", castleK)
	}

	castleQ := NewCastling(pos, E1, C1, false)
	if !castleQ.IsCastling() || !castleQ.IsQueensideCastle() || castleQ.IsKingsideCastle() {
		t.Errorf("castle %v should be queenside castling only", castleQ)
	}
}

func TestMoveCapturePredicateFromCapturingPosition(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/4p3/3P4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m := NewMove(pos, D3, E4)
	if !m.IsCapture() {
		t.Errorf("d3e4 should be a capture, got flags from %v", m)
	}
	if m.PieceCaptured().Type() != Pawn {
		t.Errorf("captured piece should be a pawn, got %v", m.PieceCaptured())
	}
	if m.PieceMoved().Type() != Pawn || m.PieceMoved().Color() != White {
		t.Errorf("moved piece should be a white pawn, got %v", m.PieceMoved())
	}
}

func TestMoveEnPassantPredicate(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/4pP2/8/8/8/4K3 w - e6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m := NewEnPassant(pos, F5, E6)
	if !m.IsEnPassant() || !m.IsCapture() {
		t.Errorf("f5e6 should be an en passant capture, got %v", m)
	}
	if m.PieceCaptured().Type() != Pawn || m.PieceCaptured().Color() != Black {
		t.Errorf("en passant should record a captured black pawn, got %v", m.PieceCaptured())
	}
}

func TestMoveUCIStringRoundTrip(t *testing.T) {
	pos := NewPosition()
	cases := []string{"e2e4", "g1f3", "b1c3"}
	for _, s := range cases {
		m, err := ParseMove(s, pos)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", s, err)
		}
		if m.String() != s {
			t.Errorf("ParseMove(%s).String() = %s", s, m.String())
		}
	}
}

func TestMailboxConsistency(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		if !undo.Valid {
			continue
		}
		for sq := Square(0); sq < 64; sq++ {
			mailboxPiece := pos.Mailbox[sq]
			var bbPiece Piece = NoPiece
			for c := White; c <= Black; c++ {
				for pt := Pawn; pt <= King; pt++ {
					if pos.Pieces[c][pt].IsSet(sq) {
						bbPiece = NewPiece(pt, c)
					}
				}
			}
			if mailboxPiece != bbPiece {
				t.Fatalf("mailbox[%v] = %v, bitboards say %v after move %v", sq, mailboxPiece, bbPiece, m)
			}
		}
		pos.UnmakeMove(m, undo)
	}
}
