package contour

import "github.com/krylov-na/SharpNav/heightfield"

// regAreaCombo packs a span's region id and area code the way the
// corner resolver needs to compare both at once: region in the low bits,
// area code shifted into the high bits.
func regAreaCombo(chf *heightfield.CompactHeightfield, spanIndex int) int {
	return chf.Spans[spanIndex].Region | (chf.Areas[spanIndex] << 16)
}

// cornerHeight resolves the Y of the voxel corner at the clockwise end
// of edge dir of span i at cell (x,y), as the max minimum height of up to
// four coincident spans, and reports whether that corner matches the
// "border vertex" pattern eligible for later removal.
func cornerHeight(chf *heightfield.CompactHeightfield, x, y, i, dir int) (cornerY int, isBorderVertex bool) {
	span := chf.Spans[i]
	ch := span.Minimum
	dirp := (dir + 1) & 0x3

	var regs [4]int
	regs[0] = regAreaCombo(chf, i)

	if span.GetConnection(dir) != heightfield.NotConnected {
		ax := x + heightfield.GetDirOffsetX(dir)
		ay := y + heightfield.GetDirOffsetY(dir)
		ai := chf.CellAt(ax, ay).Index + span.GetConnection(dir)
		as := chf.Spans[ai]
		ch = max(ch, as.Minimum)
		regs[1] = regAreaCombo(chf, ai)
		if as.GetConnection(dirp) != heightfield.NotConnected {
			ax2 := ax + heightfield.GetDirOffsetX(dirp)
			ay2 := ay + heightfield.GetDirOffsetY(dirp)
			ai2 := chf.CellAt(ax2, ay2).Index + as.GetConnection(dirp)
			ch = max(ch, chf.Spans[ai2].Minimum)
			regs[2] = regAreaCombo(chf, ai2)
		}
	}
	if span.GetConnection(dirp) != heightfield.NotConnected {
		ax := x + heightfield.GetDirOffsetX(dirp)
		ay := y + heightfield.GetDirOffsetY(dirp)
		ai := chf.CellAt(ax, ay).Index + span.GetConnection(dirp)
		as := chf.Spans[ai]
		ch = max(ch, as.Minimum)
		regs[3] = regAreaCombo(chf, ai)
		if as.GetConnection(dir) != heightfield.NotConnected {
			ax2 := ax + heightfield.GetDirOffsetX(dir)
			ay2 := ay + heightfield.GetDirOffsetY(dir)
			ai2 := chf.CellAt(ax2, ay2).Index + as.GetConnection(dir)
			ch = max(ch, chf.Spans[ai2].Minimum)
			regs[2] = regAreaCombo(chf, ai2)
		}
	}

	for j := 0; j < 4; j++ {
		a, b, c, d := j, (j+1)&0x3, (j+2)&0x3, (j+3)&0x3

		twoSameExts := (regs[a]&regs[b]&heightfield.BorderReg) != 0 && regs[a] == regs[b]
		twoInts := ((regs[c] | regs[d]) & heightfield.BorderReg) == 0
		intsSameArea := (regs[c] >> 16) == (regs[d] >> 16)
		noZeros := regs[a] != 0 && regs[b] != 0 && regs[c] != 0 && regs[d] != 0
		if twoSameExts && twoInts && intsSameArea && noZeros {
			isBorderVertex = true
			break
		}
	}

	return ch, isBorderVertex
}
