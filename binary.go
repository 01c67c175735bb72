package bitchess

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// binarySize is the fixed byte length of a marshaled Position: twelve
// 8-byte bitboards (White/Black x Pawn..King), one byte of castling
// rights, one byte for the en-passant square, one byte for side to
// move, one byte for the halfmove clock, and two bytes for the
// fullmove counter.
const binarySize = 12*8 + 1 + 1 + 1 + 1 + 2

// MarshalBinary implements encoding.BinaryMarshaler. The history stack
// and repetition table are not part of a position's persisted
// identity and are not encoded; a round trip through
// Marshal/UnmarshalBinary always yields a position with empty history.
func (p *Position) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, color := range [2]Color{White, Black} {
		for _, kind := range pieceKinds {
			if err := binary.Write(buf, binary.BigEndian, uint64(p.pieces[color][kind])); err != nil {
				return nil, err
			}
		}
	}

	var castling byte
	if p.CanCastle(White, H1) {
		castling |= 1 << 0
	}
	if p.CanCastle(White, A1) {
		castling |= 1 << 1
	}
	if p.CanCastle(Black, H8) {
		castling |= 1 << 2
	}
	if p.CanCastle(Black, A8) {
		castling |= 1 << 3
	}
	buf.WriteByte(castling)

	ep := byte(0xFF)
	if p.enPassant != NoSquare {
		ep = byte(p.enPassant)
	}
	buf.WriteByte(ep)

	turn := byte(0)
	if p.turn == Black {
		turn = 1
	}
	buf.WriteByte(turn)

	buf.WriteByte(byte(p.halfmoveClock))
	if err := binary.Write(buf, binary.BigEndian, uint16(p.fullmoves)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, reversing
// MarshalBinary. The receiver's history and repetition tracking are
// reset.
func (p *Position) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("chess: position binary data should consist of %d bytes", binarySize)
	}

	var pieces [2][6]bitboard
	var occupied [2]bitboard
	var occupiedAll bitboard
	r := bytes.NewReader(data)
	for _, color := range [2]Color{White, Black} {
		for _, kind := range pieceKinds {
			var v uint64
			if err := binary.Read(r, binary.BigEndian, &v); err != nil {
				return err
			}
			pieces[color][kind] = bitboard(v)
			occupied[color] |= bitboard(v)
			occupiedAll |= bitboard(v)
		}
	}

	castling, err := r.ReadByte()
	if err != nil {
		return err
	}
	ep, err := r.ReadByte()
	if err != nil {
		return err
	}
	turnByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	halfmove, err := r.ReadByte()
	if err != nil {
		return err
	}
	var fullmoves uint16
	if err := binary.Read(r, binary.BigEndian, &fullmoves); err != nil {
		return err
	}

	p.pieces = pieces
	p.occupied = occupied
	p.occupiedAll = occupiedAll

	p.castlingRights = [2]bitboard{}
	if castling&(1<<0) != 0 {
		p.castlingRights[White] |= bbSquare(H1)
	}
	if castling&(1<<1) != 0 {
		p.castlingRights[White] |= bbSquare(A1)
	}
	if castling&(1<<2) != 0 {
		p.castlingRights[Black] |= bbSquare(H8)
	}
	if castling&(1<<3) != 0 {
		p.castlingRights[Black] |= bbSquare(A8)
	}

	p.enPassant = NoSquare
	if ep != 0xFF {
		p.enPassant = Square(ep)
	}

	p.turn = White
	if turnByte == 1 {
		p.turn = Black
	}

	p.halfmoveClock = int(halfmove)
	p.fullmoves = int(fullmoves)
	p.history = nil
	p.trackRepetitions = false
	p.repetitions = nil

	return nil
}
