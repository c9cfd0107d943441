package dma

import "slicer/hal"

// Waiter blocks until every transfer descriptor is free.
//
// There is no timeout: a transfer that never completes blocks forever.
type Waiter interface {
	WaitIdle(d *hal.Descriptors)
}

// SpinWaiter busy-polls the descriptor counter without yielding.
type SpinWaiter struct{}

func (SpinWaiter) WaitIdle(d *hal.Descriptors) {
	for !d.Idle() {
	}
}

// NotifyWaiter sleeps on the completion notification between checks.
type NotifyWaiter struct{}

func (NotifyWaiter) WaitIdle(d *hal.Descriptors) {
	for !d.Idle() {
		<-d.Notify()
	}
}
