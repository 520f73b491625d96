package game

import "math"

// Weight of each open run of three in the naive evaluation
const threeWeight = 10.0

// NaiveEval scores a position from First's point of view: positive values
// favor First, negative values favor Second. Pieces close to the center are
// worth more, and every run of three adds threeWeight. Swapping the two
// players negates the score.
func (p Position) NaiveEval() float64 {
	widthMid := float64(Width) / 2
	heightMid := float64(Height) / 2

	score := 0.0
	for row := 0; row < Height; row++ {
		for column := 0; column < Width; column++ {
			owner := p.cells[row][column]
			if owner == None {
				continue
			}
			v := 1.0 / (math.Abs(float64(row)-heightMid) + math.Abs(float64(column)-widthMid) + 1)
			if owner == First {
				score += v
			} else {
				score -= v
			}
		}
	}

	return score +
		threeWeight*float64(p.countAlign(3, First)) -
		threeWeight*float64(p.countAlign(3, Second))
}

// Swap exchanges the pieces of the two players
func (p Position) Swap() Position {
	swapped := p
	for row := 0; row < Height; row++ {
		for column := 0; column < Width; column++ {
			if owner := p.cells[row][column]; owner != None {
				swapped.cells[row][column] = owner.Other()
			}
		}
	}
	return swapped
}
