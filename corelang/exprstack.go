package corelang

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

/*
----------------------------------------------------------------------

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

----------------------------------------------------------------------

 * This module implements a stack of operands. The parser pushes every
 * numeric argument onto it, either as a literal value or as a reference to
 * a command node built before. When a command is saturated, its operands
 * are popped off the stack in one go, in source order.

*/

// OperandStack is a stack of numeric operands.
type OperandStack struct {
	stack *linkedliststack.Stack // a stack of Operands
}

// NewOperandStack creates an empty operand stack.
func NewOperandStack() *OperandStack {
	return &OperandStack{stack: linkedliststack.New()}
}

// Push is part of
// stack functionality.
func (os *OperandStack) Push(o Operand) *OperandStack {
	os.stack.Push(o)
	tracer().Debugf("pushing operand %s", o)
	return os
}

// PushConstant pushes
// a literal numeric value onto the stack.
func (os *OperandStack) PushConstant(c float64) *OperandStack {
	return os.Push(Literal(c))
}

// Top is part of
// stack functionality. Will return a literal 0 if the stack is empty.
func (os *OperandStack) Top() Operand {
	tos, ok := os.stack.Peek()
	if !ok {
		return Literal(0)
	}
	return tos.(Operand)
}

// Pop is part of
// stack functionality.
func (os *OperandStack) Pop() (Operand, bool) {
	tos, ok := os.stack.Pop()
	if !ok {
		return Literal(0), false
	}
	return tos.(Operand), true
}

// PopN pops the topmost n operands and returns them in the order they
// have been pushed.
func (os *OperandStack) PopN(n int) ([]Operand, error) {
	if err := os.CheckOperands(n); err != nil {
		return nil, err
	}
	ops := make([]Operand, n)
	for i := n - 1; i >= 0; i-- {
		ops[i], _ = os.Pop()
	}
	return ops, nil
}

// IsEmpty is part of
// stack functionality.
func (os *OperandStack) IsEmpty() bool {
	return os.stack.Empty()
}

// Size is part of
// stack functionality.
func (os *OperandStack) Size() int {
	return os.stack.Size()
}

// Dump is an
// internal helper: dump the operand stack. This is printed to the trace
// with level=DEBUG.
func (os *OperandStack) Dump() {
	tracer().P("size", os.Size()).Debugf("Operand Stack, TOS first:")
	it := os.stack.Iterator()
	for it.Next() {
		o := it.Value().(Operand)
		tracer().P("#", it.Index()).Debugf("    %s", o)
	}
}

// CheckOperands checks
// if there are at least n operands on the stack.
func (os *OperandStack) CheckOperands(n int) error {
	if n < 0 {
		return fmt.Errorf("internal error: illegal count for stack operands")
	}
	if os.Size() < n {
		return fmt.Errorf("attempt to pop %d operand(s), but %d on stack", n, os.Size())
	}
	return nil
}
