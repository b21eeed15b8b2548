package archecs_test

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type health struct {
	Current, Max int
}

type movable struct{}

type damageEvent struct {
	Amount int
}
