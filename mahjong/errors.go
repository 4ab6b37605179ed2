package mahjong

import "fmt"

// SequenceError 事件不满足当前状态的前置条件
type SequenceError struct {
	Op     string
	Reason string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func seqErrorf(op, format string, args ...any) *SequenceError {
	return &SequenceError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// ConsistencyError 日志中上报的量与模型自身推导的量不一致
type ConsistencyError struct {
	Quantity string
	Current  string // 模型当前值
	Reported string // 日志上报值
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf(
		"%s does not match report; current: %s, reported: %s",
		e.Quantity, e.Current, e.Reported)
}

func consistencyError(quantity string, current, reported any) *ConsistencyError {
	return &ConsistencyError{
		Quantity: quantity,
		Current:  fmt.Sprint(current),
		Reported: fmt.Sprint(reported),
	}
}
