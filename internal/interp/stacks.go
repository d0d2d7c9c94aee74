package interp

// ReturnStack holds the line numbers GOSUB was called from, so RETURN can
// resume at the line following each call. Storing line numbers rather than
// store positions means a resort between GOSUB and RETURN cannot corrupt
// the stack (§9).
type ReturnStack struct {
	frames []int32
}

func (r *ReturnStack) push(lineNumber int32) { r.frames = append(r.frames, lineNumber) }

func (r *ReturnStack) pop() (int32, bool) {
	if len(r.frames) == 0 {
		return 0, false
	}
	n := len(r.frames) - 1
	v := r.frames[n]
	r.frames = r.frames[:n]
	return v, true
}

func (r *ReturnStack) len() int { return len(r.frames) }

// ForLoop is one active FOR/NEXT frame: the loop variable, its bound and
// step, and the line number of the FOR statement itself (NEXT resumes after
// this line, the same line-number-not-iterator approach as ReturnStack).
type ForLoop struct {
	Var     string
	End     Value
	Step    Value
	ForLine int32
}

// LoopStack holds nested FOR/NEXT frames, completing the partially
// implemented design §9 calls out as an open question.
type LoopStack struct {
	frames []ForLoop
}

func (l *LoopStack) push(f ForLoop) { l.frames = append(l.frames, f) }

// top returns the innermost frame.
func (l *LoopStack) top() (*ForLoop, bool) {
	if len(l.frames) == 0 {
		return nil, false
	}
	return &l.frames[len(l.frames)-1], true
}

// find locates the innermost frame matching name (case already canonicalized
// by the caller), or the top frame if name is empty.
func (l *LoopStack) find(name string) (int, bool) {
	if name == "" {
		if len(l.frames) == 0 {
			return 0, false
		}
		return len(l.frames) - 1, true
	}
	for i := len(l.frames) - 1; i >= 0; i-- {
		if l.frames[i].Var == name {
			return i, true
		}
	}
	return 0, false
}

func (l *LoopStack) popAt(i int) {
	l.frames = l.frames[:i]
}

func (l *LoopStack) len() int { return len(l.frames) }
