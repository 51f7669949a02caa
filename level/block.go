package level

import (
	"fmt"
	"unicode"
)

// Block is the kind of one grid cell.
type Block uint8

const (
	Dirt Block = iota
	Air
	PlayerStart
	PlayerEnd
)

// Collidable reports whether the block gets a static collider.
func (b Block) Collidable() bool {
	return b == Dirt || b == PlayerEnd
}

// Renderable reports whether the block has a texture.
func (b Block) Renderable() bool {
	return b == Dirt || b == PlayerEnd
}

func (b Block) String() string {
	switch b {
	case Dirt:
		return "dirt"
	case Air:
		return "air"
	case PlayerStart:
		return "start"
	case PlayerEnd:
		return "end"
	}
	return fmt.Sprintf("Block(%d)", uint8(b))
}

// Rune returns the single character used by the text level format.
func (b Block) Rune() rune {
	switch b {
	case Dirt:
		return 'b'
	case Air:
		return 'a'
	case PlayerStart:
		return 'p'
	case PlayerEnd:
		return 'e'
	}
	return '?'
}

// ParseBlock maps a text level character to its block.
func ParseBlock(r rune) (Block, error) {
	switch unicode.ToLower(r) {
	case 'b':
		return Dirt, nil
	case 'a':
		return Air, nil
	case 'p':
		return PlayerStart, nil
	case 'e':
		return PlayerEnd, nil
	}
	return Air, fmt.Errorf("%w: %q", ErrUnknownBlock, r)
}

// blockByName resolves the "block" property of a tileset tile.
func blockByName(name string) (Block, error) {
	switch name {
	case "dirt":
		return Dirt, nil
	case "air":
		return Air, nil
	case "start":
		return PlayerStart, nil
	case "end":
		return PlayerEnd, nil
	}
	return Air, fmt.Errorf("%w: %q", ErrUnknownBlock, name)
}
