package gesture

import (
	"errors"
	"time"
)

// mockDriver is a scripted Driver that records every gesture submitted
// to it. The first failFinds element lookups fail; later lookups
// resolve to elementID.
type mockDriver struct {
	viewport    Viewport
	viewportErr error

	elementID string
	rect      Rect
	rectErr   error
	failFinds int

	performErr error
	density    int

	findCalls    int
	rectCalls    int
	sequences    []Sequence
	mobileCalls  []mobileCall
	densityCalls int
}

type mobileCall struct {
	command string
	args    map[string]interface{}
}

var errNoSuchElement = errors.New("no such element")

func (m *mockDriver) ViewportSize() (Viewport, error) {
	if m.viewportErr != nil {
		return Viewport{}, m.viewportErr
	}
	return m.viewport, nil
}

func (m *mockDriver) FindElement(strategy, selector string, timeout time.Duration) (string, error) {
	m.findCalls++
	if m.findCalls <= m.failFinds || m.elementID == "" {
		return "", errNoSuchElement
	}
	return m.elementID, nil
}

func (m *mockDriver) ElementRect(elementID string) (Rect, error) {
	m.rectCalls++
	if m.rectErr != nil {
		return Rect{}, m.rectErr
	}
	return m.rect, nil
}

func (m *mockDriver) PerformPointer(seq Sequence) error {
	if m.performErr != nil {
		return m.performErr
	}
	m.sequences = append(m.sequences, seq)
	return nil
}

func (m *mockDriver) ExecuteMobile(command string, args map[string]interface{}) (interface{}, error) {
	m.mobileCalls = append(m.mobileCalls, mobileCall{command: command, args: args})
	return true, nil
}

func (m *mockDriver) DisplayDensity() (int, error) {
	m.densityCalls++
	if m.density == 0 {
		return 0, errors.New("density unavailable")
	}
	return m.density, nil
}

// swipeEndpoints extracts the start and end move coordinates of a
// recorded swipe sequence.
func swipeEndpoints(seq Sequence) (start, end Point) {
	var moves []Point
	for _, a := range seq {
		if a.Op == OpMove {
			moves = append(moves, Point{a.X, a.Y})
		}
	}
	if len(moves) > 0 {
		start = moves[0]
		end = moves[len(moves)-1]
	}
	return start, end
}
