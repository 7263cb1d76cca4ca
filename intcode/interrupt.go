package intcode

// Interrupt is yielded by Exec when control returns to the caller.
type Interrupt struct {
	// a value was produced
	Output bool
	Value  int64
	// input is exhausted, the machine is suspended on an input instruction
	NeedInput bool
}

var InterruptNeedInput = &Interrupt{
	NeedInput: true,
}
