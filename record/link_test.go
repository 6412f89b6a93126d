package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asmgraph/gfa/record"
)

func TestLinkEnds(t *testing.T) {
	l := record.NewLink("a", record.Forward, "b", record.Reverse, "10M")
	assert.Equal(t, record.SegmentEnd{Name: "a", End: record.EndE}, l.FromEnd())
	assert.Equal(t, record.SegmentEnd{Name: "b", End: record.EndE}, l.ToEnd())
}

func TestLinkOtherEnd(t *testing.T) {
	l := record.NewLink("a", record.Forward, "b", record.Forward, "*")
	from, to := l.FromEnd(), l.ToEnd()

	other, ok := l.OtherEnd(from)
	assert.True(t, ok)
	assert.Equal(t, to, other)

	_, ok = l.OtherEnd(record.SegmentEnd{Name: "c", End: record.EndB})
	assert.False(t, ok)
}

func TestLinkCircular(t *testing.T) {
	l := record.NewLink("a", record.Forward, "a", record.Reverse, "*")
	assert.True(t, l.Circular())

	l2 := record.NewLink("a", record.Forward, "b", record.Reverse, "*")
	assert.False(t, l2.Circular())
}

func TestEndTypeOther(t *testing.T) {
	assert.Equal(t, record.EndE, record.EndB.Other())
	assert.Equal(t, record.EndB, record.EndE.Other())
}

func TestIncomingOutgoingEnd(t *testing.T) {
	assert.Equal(t, record.EndB, record.IncomingEnd(record.Forward))
	assert.Equal(t, record.EndE, record.OutgoingEnd(record.Forward))
	assert.Equal(t, record.EndE, record.IncomingEnd(record.Reverse))
	assert.Equal(t, record.EndB, record.OutgoingEnd(record.Reverse))
}
