package world

// Job is an animation that advances one step per frame. Step returns true
// when the job is over.
type Job interface {
	Step(now int64) (done bool)
}

type scheduled struct {
	job    Job
	onDone func()
}

// Scheduler steps all active jobs once per frame, in the order they were
// added. When a job is over, its completion callback runs after every job of
// the frame has been stepped. Jobs added by a callback start on the next
// frame.
type Scheduler struct {
	jobs []scheduled
}

func (s *Scheduler) Add(job Job, onDone func()) {
	s.jobs = append(s.jobs, scheduled{job, onDone})
}

// Cancel removes job without running its completion callback.
func (s *Scheduler) Cancel(job Job) {
	n := 0
	for i := range s.jobs {
		if s.jobs[i].job != job {
			s.jobs[n] = s.jobs[i]
			n++
		}
	}
	clear(s.jobs[n:])
	s.jobs = s.jobs[:n]
}

func (s *Scheduler) Step(now int64) {
	var finished []scheduled
	n := 0
	for i := range s.jobs {
		if s.jobs[i].job.Step(now) {
			finished = append(finished, s.jobs[i])
		} else {
			s.jobs[n] = s.jobs[i]
			n++
		}
	}
	clear(s.jobs[n:])
	s.jobs = s.jobs[:n]

	for _, f := range finished {
		if f.onDone != nil {
			f.onDone()
		}
	}
}

func (s *Scheduler) Len() int {
	return len(s.jobs)
}
