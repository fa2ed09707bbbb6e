package main

// sequence shows n steps one after another. Step i+1 starts only when step i
// calls the next func it was handed; done runs once after the last step.
type sequence struct {
	n    int
	show func(i int, next func())
	done func()

	finished bool
}

func (s *sequence) run() { s.step(0) }

func (s *sequence) step(i int) {
	if s.finished {
		return
	}
	if i >= s.n {
		s.finished = true
		if s.done != nil {
			s.done()
		}
		return
	}
	fired := false
	s.show(i, func() {
		if fired {
			return
		}
		fired = true
		s.step(i + 1)
	})
}
