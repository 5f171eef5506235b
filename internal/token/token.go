// Package token defines the instruction symbols recognized by bfk.
package token

type TokenType byte

const (
	MOVE_RIGHT TokenType = iota // >
	MOVE_LEFT                   // <
	INCREMENT                   // +
	DECREMENT                   // -
	OUTPUT                      // .
	INPUT                       // ,
	JUMP_FWD                    // [
	JUMP_BACK                   // ]
)

// Token is one recognized instruction symbol with its source position.
type Token struct {
	Type   TokenType
	Lexeme byte
	Line   int
	Column int
}

// Symbols maps the eight source characters to their token types.
// Every other character is a comment and never produces a token.
var Symbols = map[byte]TokenType{
	'>': MOVE_RIGHT,
	'<': MOVE_LEFT,
	'+': INCREMENT,
	'-': DECREMENT,
	'.': OUTPUT,
	',': INPUT,
	'[': JUMP_FWD,
	']': JUMP_BACK,
}

var tokenNames = map[TokenType]string{
	MOVE_RIGHT: "MOVE_RIGHT",
	MOVE_LEFT:  "MOVE_LEFT",
	INCREMENT:  "INCREMENT",
	DECREMENT:  "DECREMENT",
	OUTPUT:     "OUTPUT",
	INPUT:      "INPUT",
	JUMP_FWD:   "JUMP_FWD",
	JUMP_BACK:  "JUMP_BACK",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
