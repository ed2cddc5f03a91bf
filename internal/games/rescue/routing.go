package rescue

// route picks directions around the rock recorded in the block.
//
// Blocked while moving vertically, the enemy keeps closing in vertically and
// slides sideways towards whichever rock edge is closer in total for both
// itself and the player. Blocked horizontally, the same rule runs with the
// axes swapped. The choice is greedy and may flip while the player crosses
// the rock's midline.
func (e *Enemy) route(p *Player) Moves {
	rock := e.blocked.Rock.Box

	if e.blocked.Dir.Vertical() {
		left := preferLowSide(
			e.Box.X+e.Box.W/2,
			p.Box.X+p.Box.W/2,
			rock.X, rock.Right(),
		)
		return Moves{
			Up:    p.Box.Y < e.Box.Y,
			Down:  p.Box.Y > e.Box.Y,
			Left:  left,
			Right: !left,
		}
	}

	up := preferLowSide(
		e.Box.Y+e.Box.H/2,
		p.Box.Y+p.Box.H/2,
		rock.Y, rock.Bottom(),
	)
	return Moves{
		Up:    up,
		Down:  !up,
		Left:  p.Box.X < e.Box.X,
		Right: p.Box.X > e.Box.X,
	}
}

// preferLowSide reports whether going around the low edge (left or top) of
// the span [lo, hi] is shorter for both midpoints combined. It is only taken
// while the player's midpoint is still before the high edge.
func preferLowSide(enemyMid, playerMid, lo, hi float64) bool {
	low := (enemyMid - lo) + (playerMid - lo)
	high := (hi - enemyMid) + (hi - playerMid)
	return low < high && playerMid < hi
}
