package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A dead cell with exactly three live neighbors is born. A live cell with two or
three live neighbors survives; with fewer it dies of underpopulation and with
more of overpopulation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
