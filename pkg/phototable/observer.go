package phototable

// Observer receives progress while a phototable is assembled. Calls happen
// on the goroutine running Assemble.
type Observer interface {
	// Started is called once with the number of candidate files.
	Started(total int)
	// Processed is called after each candidate, placed or skipped;
	// done runs from 1 to total.
	Processed(done, total int, result Result)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	OnStarted   func(total int)
	OnProcessed func(done, total int, result Result)
}

// Started implements Observer.
func (o ObserverFuncs) Started(total int) {
	if o.OnStarted != nil {
		o.OnStarted(total)
	}
}

// Processed implements Observer.
func (o ObserverFuncs) Processed(done, total int, result Result) {
	if o.OnProcessed != nil {
		o.OnProcessed(done, total, result)
	}
}
