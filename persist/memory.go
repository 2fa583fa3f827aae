package persist

// Memory is an in-memory Gateway for tests. LoadErr and SaveErr, when set,
// are returned by the corresponding calls to simulate storage failures.
type Memory struct {
	Snap    Snapshot
	Found   bool
	LoadErr error
	SaveErr error
	Saves   int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (g *Memory) Load() (Snapshot, bool, error) {
	if g.LoadErr != nil {
		return Snapshot{}, false, g.LoadErr
	}
	return g.Snap, g.Found, nil
}

func (g *Memory) Save(snap Snapshot) error {
	g.Saves++
	if g.SaveErr != nil {
		return g.SaveErr
	}
	g.Snap = snap
	g.Found = true
	return nil
}

func (g *Memory) Close() error {
	return nil
}
