package field

import "github.com/olivierh59500/particle-field-go/internal/config"

// Opacity returns the line alpha for two particles distSq apart, and
// whether they are close enough to be connected at all.
func Opacity(distSq, dim float64) (float64, bool) {
	if distSq >= config.ConnectDistSq {
		return 0, false
	}
	return (1 - distSq/config.ConnectDistSq) * dim, true
}

// connect draws a line between every pair of particles closer than the
// connection threshold. It is a plain O(n²) pass: the population cap keeps
// it at 4950 pairs per frame at most.
func connect(s Surface, ps []*Particle, dim float64) (pairs, lines int) {
	st := Stroke{Color: config.LineColor, Width: config.LineWidth}
	for a := 0; a < len(ps); a++ {
		pa := ps[a]
		for b := a + 1; b < len(ps); b++ {
			pb := ps[b]
			pairs++
			dx := pa.X - pb.X
			dy := pa.Y - pb.Y
			alpha, ok := Opacity(dx*dx+dy*dy, dim)
			if !ok {
				continue
			}
			st.Alpha = alpha
			s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, st)
			lines++
		}
	}
	return pairs, lines
}
