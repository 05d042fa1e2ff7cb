package world

// Sprite identifies an entry in the sprite sheet. Effect markers on tiles
// are sprites too.
type Sprite int

const (
	SpritePlayer   Sprite = 0
	SpriteCorpse   Sprite = 1
	SpriteFloor    Sprite = 2
	SpriteWall     Sprite = 3
	SpriteBird     Sprite = 4
	SpriteSnake    Sprite = 5
	SpriteTank     Sprite = 6
	SpriteEater    Sprite = 7
	SpriteJester   Sprite = 8
	SpriteHP       Sprite = 9
	SpriteTreasure Sprite = 12
	SpriteHeal     Sprite = 13
	SpriteBlast    Sprite = 14
	// SpriteBoltH is the horizontal bolt. The vertical bolt is SpriteBoltH+1,
	// so beam effects are picked as SpriteBoltH + |dy|.
	SpriteBoltH Sprite = 15
	SpriteBoltV Sprite = 16
)

// Offset is a one-step direction on the grid.
type Offset struct {
	DX, DY int
}

var (
	Up    = Offset{0, -1}
	Down  = Offset{0, 1}
	Left  = Offset{-1, 0}
	Right = Offset{1, 0}
)

// Orthogonal lists the four orthogonal directions in neighbor enumeration order.
var Orthogonal = []Offset{Up, Down, Left, Right}

// Diagonal lists the four diagonal directions.
var Diagonal = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// IsZero reports whether the offset does not move.
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}
