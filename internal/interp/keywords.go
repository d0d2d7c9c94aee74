package interp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RegisterKeywords populates env with every statement keyword required by
// §4.6, plus FOR/NEXT, LIST, and RUN/CONT (§9's supplemented features).
func RegisterKeywords(env *Environment) {
	env.AddKeyword("NEW", kwNew)
	env.AddKeyword("CLR", kwClr)
	env.AddKeyword("DELETE", kwDelete)
	env.AddKeyword("DIM", kwDim)
	env.AddKeyword("LET", kwLet)
	env.AddKeyword("PRINT", kwPrint)
	env.AddKeyword("STOP", kwStop)
	env.AddKeyword("CONT", kwCont)
	env.AddKeyword("GOTO", kwGoto)
	env.AddKeyword("GOSUB", kwGosub)
	env.AddKeyword("RETURN", kwReturn)
	env.AddKeyword("END", kwEnd)
	env.AddKeyword("REM", kwRem)
	env.AddKeyword("LIST", kwList)
	env.AddKeyword("RUN", kwRun)
	env.AddKeyword("VARS", kwVars)
	env.AddKeyword("FUNCTIONS", kwFunctions)
	env.AddKeyword("KEYWORDS", kwKeywords)
	env.AddKeyword("THEN", kwThen)
	env.AddKeyword("IF", kwIf)
	env.AddKeyword("QUIT", kwQuit)
	env.AddKeyword("EXIT", kwExit)
	env.AddKeyword("FOR", kwFor)
	env.AddKeyword("NEXT", kwNext)
}

func kwNew(it *Interpreter, rest string) (bool, error) {
	if strings.TrimSpace(rest) != "" {
		return true, NewSyntaxError("NEW takes no arguments")
	}
	it.Program.Clear()
	it.Env.ClearVariables()
	it.sub = nil
	return true, nil
}

func kwClr(it *Interpreter, rest string) (bool, error) {
	name := strings.TrimSpace(rest)
	if name == "" {
		it.Env.ClearVariables()
		return true, nil
	}
	if !it.Env.RemoveVariable(name) {
		return true, NewSyntaxError("CLR: %q is not a variable", name)
	}
	return true, nil
}

func kwDelete(it *Interpreter, rest string) (bool, error) {
	rest = strings.TrimSpace(rest)
	n, err := strconv.ParseInt(rest, 10, 32)
	if err != nil {
		return true, NewSyntaxError("DELETE requires a line number, got %q", rest)
	}
	if !it.Program.Remove(int32(n)) {
		return true, NewSyntaxError("DELETE: no line %d", n)
	}
	return true, nil
}

func kwDim(it *Interpreter, rest string) (bool, error) {
	rest = strings.TrimSpace(rest)
	idx := strings.IndexByte(rest, '(')
	if idx < 0 || !strings.HasSuffix(rest, ")") {
		return true, NewSyntaxError("DIM requires name(dim[,dim2]), got %q", rest)
	}
	name := strings.TrimSpace(rest[:idx])
	if name == "" {
		return true, NewSyntaxError("DIM: missing array name")
	}
	parts := SplitParams(rest[idx+1 : len(rest)-1])
	if len(parts) == 0 {
		return true, NewSyntaxError("DIM %q: at least one dimension is required", name)
	}
	dims := make([]int, len(parts))
	for i, p := range parts {
		v, err := it.Evaluate(p)
		if err != nil {
			return true, err
		}
		if v.Kind() != KindInteger {
			return true, NewSyntaxError("DIM %q: dimension must be an integer, got %s", name, v.Kind())
		}
		dims[i] = int(v.AsInt())
	}
	return true, it.Env.Dim(name, dims)
}

func kwLet(it *Interpreter, rest string) (bool, error) {
	return true, it.letHelper(rest)
}

func kwPrint(it *Interpreter, rest string) (bool, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		fmt.Fprintln(it.out)
		return true, nil
	}
	for i, part := range SplitParams(rest) {
		if i > 0 {
			fmt.Fprint(it.out, " ")
		}
		v, err := it.Evaluate(part)
		if err != nil {
			return true, err
		}
		fmt.Fprint(it.out, v.ToString())
	}
	fmt.Fprintln(it.out)
	return true, nil
}

func kwStop(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("STOP is only valid in a running program")
	}
	fmt.Fprintf(it.out, "BREAK IN %d\n", it.currentLine)
	it.exiting = true
	return true, nil
}

func kwCont(it *Interpreter, rest string) (bool, error) {
	if it.mode != Immediate {
		return true, NewSyntaxError("CONT is only valid in Immediate mode")
	}
	return it.Cont()
}

func kwGoto(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("GOTO is only valid in a running program")
	}
	n, err := parseTargetLine("GOTO", rest)
	if err != nil {
		return true, err
	}
	idx := it.Program.IndexOf(n)
	if idx < 0 {
		return true, NewSyntaxError("GOTO: undefined line number %d", n)
	}
	it.cursor = idx - 1
	return true, nil
}

func kwGosub(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("GOSUB is only valid in a running program")
	}
	n, err := parseTargetLine("GOSUB", rest)
	if err != nil {
		return true, err
	}
	idx := it.Program.IndexOf(n)
	if idx < 0 {
		return true, NewSyntaxError("GOSUB: undefined line number %d", n)
	}
	it.returnStack.push(it.currentLine)
	it.cursor = idx - 1
	return true, nil
}

func kwReturn(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("RETURN is only valid in a running program")
	}
	callerLine, ok := it.returnStack.pop()
	if !ok {
		return true, NewSyntaxError("RETURN without GOSUB")
	}
	idx := it.Program.IndexOf(callerLine)
	if idx < 0 {
		return true, NewFatalError("RETURN: caller line %d no longer exists", callerLine)
	}
	it.cursor = idx
	return true, nil
}

func kwEnd(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("END is only valid in a running program")
	}
	it.exiting = true
	return true, nil
}

func kwRem(it *Interpreter, rest string) (bool, error) {
	return true, nil
}

func kwList(it *Interpreter, rest string) (bool, error) {
	rest = strings.TrimSpace(rest)
	start, end := int32(0), int32(1<<31-1)
	if rest != "" {
		bounds := strings.SplitN(rest, "-", 2)
		if len(bounds) == 2 {
			if bounds[0] != "" {
				n, err := strconv.ParseInt(strings.TrimSpace(bounds[0]), 10, 32)
				if err != nil {
					return true, NewSyntaxError("LIST: bad range start %q", bounds[0])
				}
				start = int32(n)
			}
			if bounds[1] != "" {
				n, err := strconv.ParseInt(strings.TrimSpace(bounds[1]), 10, 32)
				if err != nil {
					return true, NewSyntaxError("LIST: bad range end %q", bounds[1])
				}
				end = int32(n)
			}
		} else {
			n, err := strconv.ParseInt(rest, 10, 32)
			if err != nil {
				return true, NewSyntaxError("LIST: bad line number %q", rest)
			}
			start, end = int32(n), int32(n)
		}
	}
	for _, line := range it.Program.Lines() {
		if line.Number >= start && line.Number <= end {
			fmt.Fprintf(it.out, "%d %s\n", line.Number, line.Text)
		}
	}
	return true, nil
}

func kwRun(it *Interpreter, rest string) (bool, error) {
	rest = strings.TrimSpace(rest)
	lineNumber := int32(-1)
	if rest != "" {
		n, err := strconv.ParseInt(rest, 10, 32)
		if err != nil {
			return true, NewSyntaxError("RUN: bad line number %q", rest)
		}
		lineNumber = int32(n)
	}
	return it.Run(lineNumber), nil
}

// kwVars implements VARS: lists constants then variables, per §4.6.
func kwVars(it *Interpreter, rest string) (bool, error) {
	constNames := it.Env.ConstantNames()
	sort.Strings(constNames)
	for _, n := range constNames {
		c, _ := it.Env.GetConstant(n)
		fmt.Fprintf(it.out, "%s = %s\n", n, c.Value.ToString())
	}

	varNames := it.Env.VariableNames()
	sort.Strings(varNames)
	for _, n := range varNames {
		v, _ := it.Env.GetVariable(n)
		fmt.Fprintf(it.out, "%s = %s\n", n, v.ToString())
	}
	return true, nil
}

func kwFunctions(it *Interpreter, rest string) (bool, error) {
	names := it.Env.FunctionNames()
	sort.Strings(names)
	for _, n := range names {
		fn, _ := it.Env.GetFunction(n)
		fmt.Fprintf(it.out, "%s\t%s\n", n, fn.Description)
	}
	return true, nil
}

func kwKeywords(it *Interpreter, rest string) (bool, error) {
	names := it.Env.KeywordNames()
	sort.Strings(names)
	fmt.Fprintln(it.out, strings.Join(names, " "))
	return true, nil
}

func kwThen(it *Interpreter, rest string) (bool, error) {
	return true, NewSyntaxError("THEN may only appear after IF")
}

// kwIf implements IF cond THEN action / IF cond GOTO n, where action is
// either a line number (implicit GOTO) or a statement to dispatch in place.
func kwIf(it *Interpreter, rest string) (bool, error) {
	upper := canonical(rest)
	thenIdx := FindKeyword(upper, "THEN")
	gotoIdx := FindKeyword(upper, "GOTO")

	var condText, actionText string
	switch {
	case thenIdx >= 0 && (gotoIdx < 0 || thenIdx < gotoIdx):
		condText = rest[:thenIdx]
		actionText = strings.TrimSpace(rest[thenIdx+len("THEN"):])
	case gotoIdx >= 0:
		condText = rest[:gotoIdx]
		actionText = strings.TrimSpace(rest[gotoIdx+len("GOTO"):])
	default:
		return true, NewSyntaxError("IF requires THEN or GOTO")
	}

	cond, err := it.Evaluate(condText)
	if err != nil {
		return true, err
	}
	if cond.Kind() != KindBoolean {
		return true, NewSyntaxError("IF condition must be BOOLEAN, got %s", cond.Kind())
	}
	if !cond.AsBool() {
		return true, nil
	}

	if n, ok := parseLineNumber(strings.TrimSpace(actionText)); ok {
		if it.mode != Deferred {
			return true, NewSyntaxError("IF...GOTO is only valid in a running program")
		}
		idx := it.Program.IndexOf(n)
		if idx < 0 {
			return true, NewSyntaxError("IF: undefined line number %d", n)
		}
		it.cursor = idx - 1
		return true, nil
	}

	return it.dispatchStatements(actionText), nil
}

// kwQuit implements QUIT, which prints a farewell before stopping the REPL.
func kwQuit(it *Interpreter, rest string) (bool, error) {
	fmt.Fprintln(it.out, "Good bye")
	it.exiting = true
	return false, nil
}

// kwExit implements EXIT: stops the REPL like QUIT but without the farewell.
func kwExit(it *Interpreter, rest string) (bool, error) {
	it.exiting = true
	return false, nil
}

func parseTargetLine(keyword, rest string) (int32, error) {
	rest = strings.TrimSpace(rest)
	n, err := strconv.ParseInt(rest, 10, 32)
	if err != nil {
		return 0, NewSyntaxError("%s requires a line number, got %q", keyword, rest)
	}
	return int32(n), nil
}

// kwFor implements the supplemented FOR v = start TO end [STEP step].
func kwFor(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("FOR is only valid in a running program")
	}
	upper := canonical(rest)
	toIdx := strings.Index(upper, " TO ")
	if toIdx < 0 {
		return true, NewSyntaxError("FOR requires v = start TO end")
	}
	head := strings.TrimSpace(rest[:toIdx])
	tail := strings.TrimSpace(rest[toIdx+len(" TO "):])

	varName, startExpr, ok := splitAssignment(head)
	if !ok {
		return true, NewSyntaxError("FOR requires v = start TO end")
	}
	varName = strings.TrimSpace(varName)

	stepExpr := "1"
	endExpr := tail
	stepUpper := canonical(tail)
	if stepIdx := strings.Index(stepUpper, " STEP "); stepIdx >= 0 {
		endExpr = strings.TrimSpace(tail[:stepIdx])
		stepExpr = strings.TrimSpace(tail[stepIdx+len(" STEP "):])
	}

	start, err := it.Evaluate(startExpr)
	if err != nil {
		return true, err
	}
	end, err := it.Evaluate(endExpr)
	if err != nil {
		return true, err
	}
	step, err := it.Evaluate(stepExpr)
	if err != nil {
		return true, err
	}

	if err := it.Env.AssignVariable(varName, start); err != nil {
		return true, err
	}

	it.loopStack.push(ForLoop{
		Var:     canonical(varName),
		End:     end,
		Step:    step,
		ForLine: it.currentLine,
	})
	return true, nil
}

// kwNext implements NEXT [v]: advance the loop variable by its step,
// looping back to just after the matching FOR while the bound holds.
func kwNext(it *Interpreter, rest string) (bool, error) {
	if it.mode != Deferred {
		return true, NewSyntaxError("NEXT is only valid in a running program")
	}
	name := canonical(strings.TrimSpace(rest))
	i, ok := it.loopStack.find(name)
	if !ok {
		return true, NewSyntaxError("NEXT without FOR")
	}
	frame := it.loopStack.frames[i]

	current, ok := it.Env.GetVariable(frame.Var)
	if !ok {
		return true, NewFatalError("NEXT: loop variable %q no longer exists", frame.Var)
	}

	next, err := opAdd(current, frame.Step)
	if err != nil {
		return true, err
	}
	if err := it.Env.AssignVariable(frame.Var, next); err != nil {
		return true, err
	}

	stepN, err := frame.Step.ToNumeric()
	if err != nil {
		return true, err
	}
	nextN, err := next.ToNumeric()
	if err != nil {
		return true, err
	}
	endN, err := frame.End.ToNumeric()
	if err != nil {
		return true, err
	}

	done := (stepN >= 0 && nextN > endN) || (stepN < 0 && nextN < endN)
	if done {
		it.loopStack.popAt(i)
		return true, nil
	}

	forIdx := it.Program.IndexOf(frame.ForLine)
	if forIdx < 0 {
		return true, NewFatalError("NEXT: FOR line %d no longer exists", frame.ForLine)
	}
	// driveFrom increments the cursor after this call returns, so landing on
	// forIdx here resumes at forIdx+1: the first body line, not FOR itself.
	it.cursor = forIdx
	return true, nil
}
